package elevator

import "github.com/control-sim/control-sim/devs"

// clearPorts empties every port bag, standing in for the coordinator's
// end-of-instant sweep in unit tests that drive transitions by hand.
func clearPorts(ports []devs.Port) {
	for _, p := range ports {
		p.Clear()
	}
}
