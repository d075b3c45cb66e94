package notifier

import (
	"fmt"
	"strings"

	"github.com/taichungmao-blip/metal-monitor/internal/model"
)

// BuildReport assembles the daily message: header with the latest
// table date, the gold/silver ratio line, then one block per
// instrument in the fixed report order. Instruments without a snapshot
// are simply left out. The ratio line is omitted when ratio is nil.
func BuildReport(table *model.PriceTable, snapshots map[string]model.Snapshot, ratio *model.RatioSignal, reportOrder []string, names map[string]string) string {
	var b strings.Builder

	b.WriteString("**【👑 貴金屬戰情室】**\n")
	b.WriteString(fmt.Sprintf("📅 `%s`\n", table.LatestDate().Format("2006-01-02")))
	if ratio != nil {
		b.WriteString(fmt.Sprintf("⚖️ **金銀比**: `%.1f` - %s\n", ratio.Value, ratio.Label))
	}
	b.WriteString("\n**📊 行情掃描 (含 RSI 策略):**\n")

	for _, symbol := range reportOrder {
		snap, ok := snapshots[symbol]
		if !ok {
			continue
		}
		name := names[symbol]
		if name == "" {
			name = symbol
		}
		b.WriteString(fmt.Sprintf("> **%s** `%.2f`\n", name, snap.Price))
		b.WriteString(fmt.Sprintf("> %s 漲跌: `%+.2f%%` | RSI: `%.1f` (%s)\n\n", snap.Icon, snap.Change, snap.RSI, snap.Note))
	}

	b.WriteString("💡 *策略筆記：RSI > 75 留意回檔；美元指數(DXY)若強彈，不利金價。*")
	return b.String()
}
