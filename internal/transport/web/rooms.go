package web

import (
	"net/http"
	"strconv"

	"github.com/HackerShabi/hotelwebsite/internal/catalog"
)

type roomsData struct {
	Hotel        catalog.HotelInfo
	Rooms        []catalog.Room
	Search       string
	MaxPrice     int
	PriceCeiling int
	Capacity     catalog.CapacityBucket
	Sort         catalog.SortKey
	Buckets      []catalog.CapacityBucket
	SortKeys     []catalog.SortKey
}

// roomsHandler runs the filter/sort engine over the catalog snapshot. The
// controls round-trip as query parameters; absent ones fall back to the same
// defaults the original page opened with.
func (s *Server) roomsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	ceiling := s.content.MaxRoomPrice()

	maxPrice := ceiling
	if raw := query.Get("maxPrice"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed >= 0 {
			maxPrice = parsed
		}
	}

	capacity := catalog.CapacityBucket(query.Get("capacity"))
	if capacity == "" {
		capacity = catalog.BucketAll
	}

	sortKey := catalog.SortKey(query.Get("sort"))
	if sortKey == "" {
		sortKey = catalog.SortPriceLow
	}

	filter := catalog.Filter{
		Search:   query.Get("search"),
		MaxPrice: maxPrice,
		Capacity: capacity,
		Sort:     sortKey,
	}

	s.render(w, http.StatusOK, "rooms.html", roomsData{
		Hotel:        s.content.Hotel,
		Rooms:        catalog.FilterRooms(s.content.Rooms, filter),
		Search:       filter.Search,
		MaxPrice:     maxPrice,
		PriceCeiling: ceiling,
		Capacity:     capacity,
		Sort:         sortKey,
		Buckets: []catalog.CapacityBucket{
			catalog.BucketAll,
			catalog.BucketOneTwo,
			catalog.BucketThreeFou,
			catalog.BucketFivePlus,
		},
		SortKeys: []catalog.SortKey{
			catalog.SortPriceLow,
			catalog.SortPriceHigh,
			catalog.SortCapacity,
			catalog.SortName,
		},
	})
}
