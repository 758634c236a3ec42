package jobs

// Progress receives step boundaries from a running job. The CLI renders them;
// everything else can ignore them.
type Progress interface {
	Step(name string)
	Done(details ...string)
	Info(format string, args ...any)
}

type nopProgress struct{}

func (nopProgress) Step(string)         {}
func (nopProgress) Done(...string)      {}
func (nopProgress) Info(string, ...any) {}
