package catalog

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortCapacity  SortKey = "capacity"
	SortName      SortKey = "name"
)

type CapacityBucket string

const (
	BucketAll      CapacityBucket = "all"
	BucketOneTwo   CapacityBucket = "1-2"
	BucketThreeFou CapacityBucket = "3-4"
	BucketFivePlus CapacityBucket = "5+"
)

// Filter is one configuration of the rooms page controls. Zero values mean
// "inactive": empty search matches everything, MaxPrice <= 0 applies no
// ceiling, an empty bucket behaves like BucketAll and an empty sort key
// keeps catalog order.
type Filter struct {
	Search   string
	MaxPrice int
	Capacity CapacityBucket
	Sort     SortKey
}

// FilterRooms returns the ordered subsequence of rooms matching every active
// predicate. It is a pure function: the input slice is never reordered, and
// rooms that compare equal under the sort key keep their catalog order.
func FilterRooms(rooms []Room, f Filter) []Room {
	matched := make([]Room, 0, len(rooms))

	search := strings.ToLower(f.Search)

	for _, room := range rooms {
		if !matchesSearch(room, search) {
			continue
		}

		if f.MaxPrice > 0 && room.Price > f.MaxPrice {
			continue
		}

		if !matchesCapacity(room, f.Capacity) {
			continue
		}

		matched = append(matched, room)
	}

	sortRooms(matched, f.Sort)

	return matched
}

func matchesSearch(room Room, search string) bool {
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(room.Title), search) ||
		strings.Contains(strings.ToLower(room.Description), search)
}

func matchesCapacity(room Room, bucket CapacityBucket) bool {
	switch bucket {
	case BucketOneTwo:
		return room.MaxGuests <= 2
	case BucketThreeFou:
		return room.MaxGuests >= 3 && room.MaxGuests <= 4
	case BucketFivePlus:
		return room.MaxGuests >= 5
	case BucketAll, "":
		return true
	default:
		return true
	}
}

func sortRooms(rooms []Room, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Price < rooms[j].Price })
	case SortPriceHigh:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Price > rooms[j].Price })
	case SortCapacity:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].MaxGuests > rooms[j].MaxGuests })
	case SortName:
		sort.SliceStable(rooms, func(i, j int) bool {
			return strings.ToLower(rooms[i].Title) < strings.ToLower(rooms[j].Title)
		})
	default:
		// keep catalog order
	}
}
