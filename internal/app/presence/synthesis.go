package presence

// OnlineEstimate derives a server's displayed online counter from the real
// global online-user count. The multiplier scales the global count and the
// floor keeps small communities from showing empty.
type OnlineEstimate struct {
	Multiplier int
	Floor      int
}

// Apply computes the displayed counter for the given global online count.
func (e OnlineEstimate) Apply(online int) int {
	if v := online * e.Multiplier; v > e.Floor {
		return v
	}
	return e.Floor
}

// ServerOnlineEstimates maps server names to their display heuristic. The
// mapping is a business rule, not incidental logic: every stats read overwrites
// the stored online counter of each listed server with the estimate, and
// servers missing from the map keep whatever counter they already have.
var ServerOnlineEstimates = map[string]OnlineEstimate{
	"General Chat": {Multiplier: 4, Floor: 200},
	"Gamers":       {Multiplier: 3, Floor: 150},
	"Creative":     {Multiplier: 1, Floor: 50},
	"Music":        {Multiplier: 2, Floor: 80},
}

// Demo floors applied to the stats response payload only; stored counters are
// not affected by these.
const (
	DemoMinOnlineUsers   = 200
	DemoMinMessagesToday = 1000
)
