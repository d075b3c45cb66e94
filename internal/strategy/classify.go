package strategy

// ChangeIcon maps a day-over-day percent change to its status icon.
// A NaN change fails every comparison and lands on the down icon.
func ChangeIcon(changePct float64) string {
	switch {
	case changePct > 2.0:
		return "🔥" // 大漲
	case changePct < -2.0:
		return "❄️" // 大跌
	case changePct > 0:
		return "📈"
	default:
		return "📉"
	}
}

// RSINote maps RSI(14) to the strategy note shown next to an
// instrument. A NaN RSI falls through to the consolidation note,
// never the overheated or oversold ones.
func RSINote(rsi float64) string {
	switch {
	case rsi > 75:
		return "⚠️過熱 | 勿追高"
	case rsi > 50:
		return "💪強勢區"
	case rsi < 30:
		return "✨超賣 | 反彈機會"
	default:
		return "➡️盤整"
	}
}

// RatioLabel maps the gold/silver ratio to its regime label. The
// boundaries 85 and 60 belong to the normal bucket.
func RatioLabel(ratio float64) string {
	switch {
	case ratio > 85:
		return "⚪️ 白銀超跌 (補漲機會大)"
	case ratio < 60:
		return "🟡 黃金強勢"
	default:
		return "⚖️ 區間正常"
	}
}
