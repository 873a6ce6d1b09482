package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to. Empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the first candidate port.
	Port int `mapstructure:"port" default:"3000"`
	// MaxAttempts is how many consecutive ports are probed starting at Port.
	MaxAttempts int `mapstructure:"max_attempts" default:"10"`
	// Ports is an explicit ordered list of candidate ports. It takes
	// precedence over Port and MaxAttempts when set.
	Ports []int `mapstructure:"ports" default:""`
	// Profile selects the preset applied on top of the struct defaults.
	Profile string `mapstructure:"profile" default:"spa"`
}

// Candidates returns the ordered list of ports to probe.
func (c Config) Candidates() []int {
	if len(c.Ports) > 0 {
		out := make([]int, len(c.Ports))
		copy(out, c.Ports)
		return out
	}

	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	out := make([]int, 0, attempts)
	for i := 0; i < attempts; i++ {
		out = append(out, c.Port+i)
	}
	return out
}
