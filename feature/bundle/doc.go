// Package bundle fetches a published build from object storage.
//
// CI uploads the SPA build output to a bucket under a prefix. Download
// mirrors that prefix into the local site root so the preview server can
// serve it without a local toolchain.
package bundle
