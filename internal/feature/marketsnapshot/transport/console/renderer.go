// Package console はスナップショットを端末向けのテキストに整形します。
package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"eve_market/internal/feature/marketsnapshot/domain/entity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Renderer は数値を桁区切りで出力するスナップショットのレンダラーです。
type Renderer struct {
	p *message.Printer
}

// NewRenderer はtagの書式で数値を出力するRendererを生成します。
func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{p: message.NewPrinter(tag)}
}

// Render は英語書式のRendererでスナップショットを書き出します。
func Render(w io.Writer, s entity.MarketSnapshot) error {
	return NewRenderer(language.English).Render(w, s)
}

// Render はスナップショットをwに書き出します。
func (r *Renderer) Render(w io.Writer, s entity.MarketSnapshot) error {
	item := s.Item()
	book := s.OrderBook()
	hist := s.History()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (type %d)\n", item.Name, item.ID)
	// IDは桁区切りしない
	fmt.Fprintf(tw, "Region %d, %s\n\n", s.RegionID(), scopeLabel(s.Scope()))

	if v, ok := book.BestBid(); ok {
		r.p.Fprintf(tw, "Best bid\t%s ISK\n", r.isk(v))
	} else {
		fmt.Fprintf(tw, "Best bid\tno buy orders\n")
	}
	if v, ok := book.BestAsk(); ok {
		r.p.Fprintf(tw, "Best ask\t%s ISK\n", r.isk(v))
	} else {
		fmt.Fprintf(tw, "Best ask\tno sell orders\n")
	}
	if v, ok := book.Spread(); ok {
		r.p.Fprintf(tw, "Spread\t%s ISK\n", r.isk(v))
	}
	r.p.Fprintf(tw, "Item volume\t%.2f m3\n", item.Volume)
	r.p.Fprintf(tw, "Buy orders\t%d (%d units)\n", book.BuyOrderCount, book.TotalBuyVolume)
	r.p.Fprintf(tw, "Sell orders\t%d (%d units)\n", book.SellOrderCount, book.TotalSellVolume)

	r.p.Fprintf(tw, "\nLast %d days (%d data points)\n", s.WindowSize(), hist.DataPoints)
	if hist.DataPoints == 0 {
		fmt.Fprintf(tw, "no trade history\n")
		return tw.Flush()
	}
	r.p.Fprintf(tw, "Average price\t%s ISK\n", r.isk(hist.AvgPrice))
	r.p.Fprintf(tw, "Highest price\t%s ISK\n", r.isk(hist.HighestPrice))
	r.p.Fprintf(tw, "Lowest price\t%s ISK\n", r.isk(hist.LowestPrice))
	r.p.Fprintf(tw, "Average volume\t%.0f\n", hist.AvgVolume)
	r.p.Fprintf(tw, "Total volume\t%d\n\n", hist.TotalVolume)

	fmt.Fprintf(tw, "Date\tAverage\tHighest\tLowest\tVolume\tOrders\n")
	for _, b := range hist.WindowBars {
		r.p.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\n",
			b.Date.UTC().Format("2006-01-02"), r.isk(b.Average), r.isk(b.Highest), r.isk(b.Lowest), b.Volume, b.OrderCount)
	}
	return tw.Flush()
}

func (r *Renderer) isk(v float64) string {
	return r.p.Sprintf("%.2f", v)
}

func scopeLabel(scope entity.LocationScope) string {
	if !scope.Set {
		return "all locations"
	}
	return fmt.Sprintf("location %d", scope.ID)
}
