package epidemicgo

// seirHooks returns the (no-op, no-op) hook pair for the plain SEIR
// model: no zone decay/shedding, no airborne transmission roll. See
// stepper.go for the shared step body both models run through.
func seirHooks() stepHooks {
	return noopHooks
}
