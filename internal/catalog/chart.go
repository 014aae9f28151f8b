package catalog

import "tfxlab/internal/domain"

// Pairs tradable from the market grid, in display order.
var chartPairs = []string{"EURUSD", "XAUUSD", "GBPUSD", "BTCUSD"}

// DefaultPair and DefaultInterval select the grid's initial chart.
const (
	DefaultPair     = "EURUSD"
	DefaultInterval = "15"
)

// ChartConfig is the parameter set handed to the embedded TradingView
// advanced-chart widget. The widget owns everything beyond these fields.
type ChartConfig struct {
	Autosize         bool   `json:"autosize"`
	Symbol           string `json:"symbol"`
	Interval         string `json:"interval"`
	Theme            string `json:"theme"`
	Style            string `json:"style"`
	Locale           string `json:"locale"`
	EnablePublishing bool   `json:"enable_publishing"`
	BackgroundColor  string `json:"backgroundColor"`
	GridColor        string `json:"gridColor"`
	ContainerID      string `json:"container_id"`
}

// ChartPairs returns the tradable pair list.
func ChartPairs() []string {
	out := make([]string, len(chartPairs))
	copy(out, chartPairs)
	return out
}

// NewChartConfig builds the widget config for a pair and interval. Unknown
// pairs are rejected so the widget never receives an inconsistent symbol.
func NewChartConfig(pair, interval string) (ChartConfig, error) {
	if pair == "" {
		pair = DefaultPair
	}
	if interval == "" {
		interval = DefaultInterval
	}
	known := false
	for _, p := range chartPairs {
		if p == pair {
			known = true
			break
		}
	}
	if !known {
		return ChartConfig{}, domain.ErrUnsupportedPair
	}
	return ChartConfig{
		Autosize:        true,
		Symbol:          "FX:" + pair,
		Interval:        interval,
		Theme:           "dark",
		Style:           "1",
		Locale:          "en",
		BackgroundColor: "rgba(13, 18, 31, 1)",
		GridColor:       "rgba(255, 255, 255, 0.03)",
		ContainerID:     "tv_chart_main",
	}, nil
}
