package service

// RegistryMetrics records business counters for the doctor registry.
type RegistryMetrics interface {
	IncDoctorsRegistered(specialty string)
	IncDoctorsUpdated()
	IncDoctorsDeactivated()
}
