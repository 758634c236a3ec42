package core

// Limits and choices for the project metadata stored next to the project.
const (
	TitleMaxLength       = 40
	DescriptionMaxLength = 100
	MetadataFileName     = "metadata.json"
)

// Algorithms lists the supervised learning kinds a project can declare.
var Algorithms = []string{"Classification", "Regression"}

// Sensors lists the target sensor kinds. The last entry is the default.
var Sensors = []string{
	"Microphone", "IVS-Infineon Vibration Sensor",
	"Camera",
	"Radar",
	"Capacitive Sensing", "Inductive Sensing",
	"Current", "Voltage", "Power",
	"Torque", "RPM",
	"IMU", "Vibration",
	"Other",
}

// Metadata represents the structure of the metadata.json file.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Algorithm   string   `json:"algorithm"`
	Sensors     []string `json:"sensors"`
}

// MetadataSource tells where the metadata of a submission came from.
type MetadataSource int

const (
	// MetadataFromFile means an existing metadata.json was kept as is.
	MetadataFromFile MetadataSource = iota
	// MetadataFromFlags means every field was supplied on the command line.
	MetadataFromFlags
	// MetadataInteractive means at least one field was collected by prompting.
	MetadataInteractive
)

func (s MetadataSource) String() string {
	switch s {
	case MetadataFromFile:
		return "file"
	case MetadataFromFlags:
		return "flags"
	case MetadataInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DefaultAlgorithm returns the algorithm used when a prompt is left empty.
func DefaultAlgorithm() string { return Algorithms[0] }

// DefaultSensor returns the sensor used when a prompt is left empty.
func DefaultSensor() string { return Sensors[len(Sensors)-1] }
