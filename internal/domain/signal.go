package domain

// SignalSide is the direction of a trade signal.
type SignalSide string

const (
	SignalBuy  SignalSide = "BUY"
	SignalSell SignalSide = "SELL"
)

// Signal is a canned trading signal from the laboratory desk.
type Signal struct {
	ID         string     `json:"id"`
	Pair       string     `json:"pair"`
	Side       SignalSide `json:"type"`
	Timeframe  string     `json:"timeframe"`
	Confidence int        `json:"confidence"`
	Strategy   string     `json:"strategy"`
	Entry      string     `json:"entry"`
	TakeProfit string     `json:"tp"`
	StopLoss   string     `json:"sl"`
	Note       string     `json:"note"`
}

// StudyModule is one entry of the education track.
type StudyModule struct {
	Level   int    `json:"level"`
	Phase   string `json:"phase"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
