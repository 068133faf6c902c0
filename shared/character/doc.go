// Package character holds the third-person controller core: the gravity
// integrator, ground sensor, locomotion controller, character mover and the
// orbit camera, plus the door interaction contract.
//
// Everything here is a plain value driven by an explicit dt. There is no
// engine state: collaborators (world queries, input, animation) are passed in
// through the small interfaces in this package, and a missing collaborator
// turns the component inert instead of failing the step.
package character
