package catalog

import "tfxlab/internal/domain"

var studyMap = []domain.StudyModule{
	{Level: 1, Phase: "PHASE 1", Title: "Market Essentials", Content: "Forex is the global marketplace for currency exchange. Every professional journey starts with mastering pips, leverage, and margin."},
	{Level: 1, Phase: "PHASE 1", Title: "Market Structure", Content: "Prices move in trends. We identify the direction by looking for Higher Highs and Higher Lows in an uptrend, or vice versa."},
	{Level: 2, Phase: "PHASE 2", Title: "Technical Mastery", Content: "Price action is the study of how price behaves at specific levels. Patterns like Pin Bars and Engulfing Candles are key signals."},
	{Level: 2, Phase: "PHASE 2", Title: "Institutional Liquidity", Content: "Institutions look for liquidity. Smart Money Concepts (SMC) help us identify Order Blocks where big money enters the market."},
	{Level: 3, Phase: "PHASE 3", Title: "Psychology Lab", Content: "Trading is 80% mental. Discipline, patience, and emotional control are the tools of a professional."},
	{Level: 3, Phase: "PHASE 3", Title: "Risk Management", Content: "Capital preservation is priority #1. Never risk more than 1% of your account on a single trade."},
	{Level: 4, Phase: "PHASE 4", Title: "Strategy Scaling", Content: "Learn how to build a consistent trading plan. A strategy without a plan is just a gamble."},
	{Level: 5, Phase: "PHASE 5", Title: "Fundamental Analysis", Content: "Understand how interest rates, inflation, and global news impact currency valuations."},
	{Level: 6, Phase: "PHASE 6", Title: "The Pro Mindset", Content: "Refining your edge. Successful trading is about repeating high-probability setups over and over."},
	{Level: 7, Phase: "PHASE 7", Title: "Final Mastery", Content: "Compounding your gains and managing large institutional funds."},
}

// StudyMap returns the full education track.
func StudyMap() []domain.StudyModule {
	out := make([]domain.StudyModule, len(studyMap))
	copy(out, studyMap)
	return out
}
