// Package update contains the core domain types of the update pipeline.
//
// It defines the release Descriptor and Channel, the dedup Decision, the
// download Progress contract with its Sink, and the closed Error union
// every pipeline failure maps onto.
package update
