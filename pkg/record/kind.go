package record

// Kind identifies a record category with its own display profile.
type Kind string

const (
	KindSystem      Kind = "system"
	KindService     Kind = "service"
	KindInstance    Kind = "instance"
	KindEnvironment Kind = "environment"
	KindAlert       Kind = "alert"
	KindCheck       Kind = "check"
)

// kinds lists every supported kind in display order.
var kinds = []Kind{
	KindSystem,
	KindService,
	KindInstance,
	KindEnvironment,
	KindAlert,
	KindCheck,
}

// IsValid reports whether k names a supported record kind.
func (k Kind) IsValid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// SupportedKinds returns the names of all supported kinds.
func SupportedKinds() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
