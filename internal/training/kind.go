package training

// Kind identifies a workout variant.
type Kind int

const (
	KindSwimming Kind = iota + 1
	KindRunning
	KindWalking
)

var kindCodes = map[Kind]string{
	KindSwimming: "SWM",
	KindRunning:  "RUN",
	KindWalking:  "WLK",
}

var kindLabels = map[Kind]string{
	KindSwimming: "Swimming",
	KindRunning:  "Running",
	KindWalking:  "SportsWalking",
}

// Code returns the sensor discriminator code, e.g. "RUN".
func (k Kind) Code() string {
	return kindCodes[k]
}

// String returns the label printed in the report.
func (k Kind) String() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return "Unknown"
}

// KindByCode looks up a workout kind by its discriminator code.
func KindByCode(code string) (Kind, bool) {
	for k, c := range kindCodes {
		if c == code {
			return k, true
		}
	}
	return 0, false
}

// Kinds returns all known kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindSwimming, KindRunning, KindWalking}
}
