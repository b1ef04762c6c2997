package mapping

type color int

const (
	red color = iota + 3
	green
	blue
)

func (c color) String() string {
	switch c {
	case red:
		return "Red"
	case green:
		return "Green"
	case blue:
		return "Blue"
	}
	return "unknown"
}

type base struct {
	ID      int
	Comment string `xgraph:"name=note"`
}

type account struct {
	base
	Name     string `xgraph:"order=1"`
	Balance  float64
	Hidden   string `xgraph:"-"`
	total    int    `xgraph:"include;readonly"`
	secret   string
	Tags     []string `xgraph:"order=-1"`
	Owner    *account
	synced   int
	Colors   map[string]color
	Favorite color
}

func (a *account) Recompute() {
	a.synced = a.total * 2
}

type shadow struct {
	base
	ID string
}
