package pages

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"trip_planner/internal/domain"
)

const (
	routeCards  = 3
	flightCards = 10
	hotelCards  = 5
)

func load(ctx context.Context, f domain.PageFetcher, u string) (*Document, error) {
	b, err := f.FetchPage(ctx, u)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func cityPath(s string) string { return url.PathEscape(domain.TitleCity(s)) }

// MapsRoutes scrapes the driving directions page. Each card record also
// carries the full page text for the distance cascade.
type MapsRoutes struct {
	fetch domain.PageFetcher
	base  string
}

func NewMapsRoutes(f domain.PageFetcher, base string) *MapsRoutes {
	return &MapsRoutes{fetch: f, base: strings.TrimRight(base, "/")}
}

func (s *MapsRoutes) Name() string { return "google_maps" }

func (s *MapsRoutes) URL(q domain.TripQuery) string {
	return fmt.Sprintf("%s/maps/dir/%s/%s/", s.base, cityPath(q.Source), cityPath(q.Destination))
}

func (s *MapsRoutes) Fetch(ctx context.Context, q domain.TripQuery) ([]domain.RawRecord, error) {
	doc, err := load(ctx, s.fetch, s.URL(q))
	if err != nil {
		return nil, err
	}
	page := doc.Text()
	cards := doc.FindAll(`div[role="radio"]`, "div.XdKEzd", "div.MespJc")
	if len(cards) == 0 && !strings.Contains(page, " km") {
		return nil, nil
	}
	out := make([]domain.RawRecord, 0, routeCards)
	for i := 0; i < routeCards; i++ {
		rec := domain.RawRecord{"index": i, "page_text": page}
		if i < len(cards) {
			rec["card_text"] = TextOf(cards[i])
		} else if len(cards) > 0 {
			break
		}
		out = append(out, rec)
	}
	return out, nil
}

// FlightSearch scrapes a flight search results page into card texts.
type FlightSearch struct {
	fetch domain.PageFetcher
	base  string
}

func NewFlightSearch(f domain.PageFetcher, base string) *FlightSearch {
	return &FlightSearch{fetch: f, base: base}
}

func (s *FlightSearch) Name() string { return "flight_search" }

func (s *FlightSearch) URL(q domain.TripQuery) string {
	query := fmt.Sprintf("flights from %s to %s on %s", q.SourceCity(), q.DestinationCity(), q.StartDate.Format(domain.DateLayout))
	sep := "?"
	if strings.Contains(s.base, "?") {
		sep = "&"
	}
	return s.base + sep + "q=" + url.QueryEscape(query)
}

func (s *FlightSearch) Fetch(ctx context.Context, q domain.TripQuery) ([]domain.RawRecord, error) {
	doc, err := load(ctx, s.fetch, s.URL(q))
	if err != nil {
		return nil, err
	}
	var out []domain.RawRecord
	for _, card := range doc.FindAll("li.pIav2d", "div.yR1fYc", `div[role="listitem"]`) {
		if len(out) == flightCards {
			break
		}
		if t := TextOf(card); t != "" {
			out = append(out, domain.RawRecord{"card_text": t})
		}
	}
	return out, nil
}

// HotelLayout describes where a listing site keeps its fields. Every list
// is tried in order.
type HotelLayout struct {
	Cards, Name, Location, Price, Rating, Amenities []string
}

// HotelSite is one hotel listing source.
type HotelSite struct {
	name   string
	fetch  domain.PageFetcher
	url    func(q domain.TripQuery) string
	layout HotelLayout
}

func (s *HotelSite) Name() string                 { return s.name }
func (s *HotelSite) URL(q domain.TripQuery) string { return s.url(q) }

func (s *HotelSite) Fetch(ctx context.Context, q domain.TripQuery) ([]domain.RawRecord, error) {
	doc, err := load(ctx, s.fetch, s.url(q))
	if err != nil {
		return nil, err
	}
	var out []domain.RawRecord
	for _, card := range doc.FindAll(s.layout.Cards...) {
		if len(out) == hotelCards {
			break
		}
		if rec := s.record(card); rec != nil {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *HotelSite) record(card *html.Node) domain.RawRecord {
	rec := domain.RawRecord{"card_text": TextOf(card)}
	set := func(key string, sels []string) {
		if v := FirstText(card, sels...); v != "" {
			rec[key] = v
		}
	}
	set("name", s.layout.Name)
	set("location", s.layout.Location)
	set("price", s.layout.Price)
	set("rating", s.layout.Rating)
	if am := amenities(FirstText(card, s.layout.Amenities...)); len(am) > 0 {
		rec["amenities"] = am
	}
	if rec["name"] == nil && rec["card_text"] == "" {
		return nil
	}
	return rec
}

// amenities splits on bullets, then commas, keeping four.
func amenities(s string) []any {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "•")
	if len(parts) < 2 {
		parts = strings.Split(s, ",")
	}
	var out []any
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
		if len(out) == 4 {
			break
		}
	}
	return out
}

func dates(q domain.TripQuery) (string, string) {
	return q.StartDate.Format(domain.DateLayout), q.EndDate().Format(domain.DateLayout)
}

func NewGoogleHotels(f domain.PageFetcher, base string) *HotelSite {
	base = strings.TrimRight(base, "/")
	return &HotelSite{
		name: "google_travel", fetch: f,
		url: func(q domain.TripQuery) string {
			return fmt.Sprintf("%s/travel/hotels/%s", base, cityPath(q.Destination))
		},
		layout: HotelLayout{
			Cards:    []string{"div.PVOOXe", "c-wiz[data-node-index] div.uaTTDe", "div.Ld2paf", "div.kQb6Eb", "div.R6S7Vc"},
			Name:     []string{"div.BTPx6e", "h2", ".lmg0Lc", ".kPMwsc", `div[role="heading"]`},
			Price:    []string{"div.a1NkSb", "div.rQCNJf", ".TkqmHV", "div.IBkO8"},
			Rating:   []string{"span.KFi5wf.lA0BZ", ".sSHqwe", ".TBXiFf", "div.NPe8Qe"},
			Location: []string{".uTUoTb", ".nxzU7e"},
		},
	}
}

func NewBooking(f domain.PageFetcher, base string) *HotelSite {
	base = strings.TrimRight(base, "/")
	return &HotelSite{
		name: "booking", fetch: f,
		url: func(q domain.TripQuery) string {
			in, out := dates(q)
			v := url.Values{"ss": {domain.TitleCity(q.Destination)}, "checkin": {in}, "checkout": {out}, "group_adults": {"2"}}
			return base + "/searchresults.html?" + v.Encode()
		},
		layout: HotelLayout{
			Cards:     []string{`div[data-testid="property-card"]`},
			Name:      []string{`div[data-testid="title"]`},
			Location:  []string{`span[data-testid="address"]`},
			Price:     []string{`span[data-testid="price-and-discounted-price"]`},
			Rating:    []string{`div[data-testid="review-score"] div`},
			Amenities: []string{`div[data-testid="property-card-unit-configuration"]`},
		},
	}
}

func NewGoibibo(f domain.PageFetcher, base string) *HotelSite {
	base = strings.TrimRight(base, "/")
	return &HotelSite{
		name: "goibibo", fetch: f,
		url: func(q domain.TripQuery) string {
			in, out := dates(q)
			city := strings.ReplaceAll(q.DestinationCity(), " ", "-")
			return fmt.Sprintf("%s/hotels/hotels-in-%s-ct/?ci=%s&co=%s&adults=2&children=0",
				base, city, strings.ReplaceAll(in, "-", ""), strings.ReplaceAll(out, "-", ""))
		},
		layout: HotelLayout{
			Cards: []string{
				"div.HotelCardstyles__HotelCardWrapperDiv-sc-1s80tyk-0",
				"div.infinite-scroll-component div.SRPstyles__CardWrapperDiv-sc-43xreq-1",
				`[class*="SRPstyles__TileWrapperComponent-sc-"]`,
				`div[data-testid="hotelCard"]`,
				"a.tile",
			},
			Name: []string{
				`h4[class*="HotelCardstyles__HotelNameWrapperDiv-sc-"]`,
				`h3[class*="HotelCardstyles__HotelNameWrapperDiv-sc-"]`,
				`h3[class*="dwebCommonstyles__SmallSectionHeader-sc-"]`,
				`[class*="SRPstyles__HotelNameText-sc-"]`,
			},
			Location: []string{`div[class*="HotelCardstyles__LocalityWrapper-sc-"]`, `[class*="SRPstyles__PDTextTop-sc-"]`, `div[itemprop="address"]`},
			Price: []string{
				`div[class*="HotelCardstyles__CurrentPriceWrapper-sc-"] span`,
				`[class*="SRPstyles__RoomPriceText-sc-"]`,
				`span[itemprop="price"]`,
			},
			Rating:    []string{`span[class*="HotelCardstyles__HotelRatingBadge-sc-"]`, `[class*="SRPstyles__RatingPill-sc-"]`, `span[itemprop="ratingValue"]`},
			Amenities: []string{`div[class*="HotelCardstyles__HotelInfoWrapperDiv-sc-"]`, `[class*="SRPstyles__AmenitiesContainer-sc-"]`, `div[data-testid="amenities"]`},
		},
	}
}

func NewMakeMyTrip(f domain.PageFetcher, base string) *HotelSite {
	base = strings.TrimRight(base, "/")
	return &HotelSite{
		name: "makemytrip", fetch: f,
		url: func(q domain.TripQuery) string {
			in, out := dates(q)
			v := url.Values{"checkin": {in}, "checkout": {out}, "city": {q.DestinationCity()}, "roomStayQualifier": {"2e0e"}}
			return base + "/hotels/hotel-listing/?" + v.Encode()
		},
		layout: HotelLayout{
			Cards:    []string{"div.makeFlex.hrtlCenter"},
			Name:     []string{"p.latoBlack.font22"},
			Location: []string{"p.font12.grey"},
			Price:    []string{"p.latoBlack.font26"},
			Rating:   []string{"span.latoBold.font12.blue"},
		},
	}
}
