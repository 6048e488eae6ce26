package domain

// RunOutcome collects every Result of a single pass.
type RunOutcome struct {
	Results []Result `json:"results"`
}

// AllHealthy is the AND over all results; true when nothing was checked.
func (o RunOutcome) AllHealthy() bool {
	for _, r := range o.Results {
		if !r.Healthy {
			return false
		}
	}
	return true
}

func (o RunOutcome) Failed() []Result {
	var out []Result
	for _, r := range o.Results {
		if !r.Healthy {
			out = append(out, r)
		}
	}
	return out
}

// ExitCode follows the process contract: 0 iff every probe passed.
func (o RunOutcome) ExitCode() int {
	if o.AllHealthy() {
		return 0
	}
	return 1
}
