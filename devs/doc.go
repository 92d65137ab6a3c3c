// Package devs provides the core discrete-event (DEVS) simulation engine
// for control-sim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - port.go: typed ports and per-instant message bags
//   - atomic.go: the Atomic contract (transitions, output, time advance)
//   - coordinator.go: the root coordinator's three-phase instant protocol
//
// # Architecture
//
// The devs package defines the formalism only; concrete models live in
// sub-packages of models/ and boundary adapters in iomodel/:
//   - models/elevator/: the three-component elevator control network
//   - models/garage/: garage door opener with password lock
//   - models/temperature/: temperature monitor with LED/buzzer signal
//   - models/trafficlight/: self-clocked traffic light
//   - iomodel/: event-stream inputs and digital/LCD/PWM output sinks
//
// Coupled models present a flattened view of their children to the
// coordinator: couplings are resolved through nested external ports down to
// atomic-owned ports before the first instant fires. Within one instant the
// coordinator applies the confluent rule: every imminent model runs
// output-then-internal before any externally triggered transition runs, so a
// model that both fires and receives input in the same instant sees its
// external transition with zero elapsed time.
package devs
