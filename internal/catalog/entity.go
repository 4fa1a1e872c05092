package catalog

// Room is a bookable room as the backend and the content file describe it.
// Price is the nightly rate in whole currency units. The site never mutates
// rooms; they are created and updated by the backend.
type Room struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Price         int      `json:"price" yaml:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	Images        []string `json:"images" yaml:"images"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
	MaxGuests     int      `json:"maxGuests" yaml:"maxGuests"`
	Size          string   `json:"size" yaml:"size"`
	BedType       string   `json:"bedType" yaml:"bedType"`
	Available     bool     `json:"available" yaml:"available"`
	Featured      bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
}

// Discounted reports whether the room carries a struck-through original price.
func (r Room) Discounted() bool {
	return r.OriginalPrice > r.Price
}

type Service struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        Icon   `json:"icon" yaml:"icon"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
	Featured    bool   `json:"featured,omitempty" yaml:"featured,omitempty"`
	Available   bool   `json:"available" yaml:"available"`
}

type GalleryCategory string

const (
	CategoryRooms      GalleryCategory = "rooms"
	CategoryRestaurant GalleryCategory = "restaurant"
	CategorySpa        GalleryCategory = "spa"
	CategoryExterior   GalleryCategory = "exterior"
	CategoryAmenities  GalleryCategory = "amenities"
)

type GalleryImage struct {
	ID       string          `json:"id" yaml:"id"`
	URL      string          `json:"url" yaml:"url"`
	Alt      string          `json:"alt" yaml:"alt"`
	Category GalleryCategory `json:"category" yaml:"category"`
}

type TeamMember struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Position string `json:"position" yaml:"position"`
	Image    string `json:"image" yaml:"image"`
	Bio      string `json:"bio" yaml:"bio"`
}

type Testimonial struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Rating   int    `json:"rating" yaml:"rating"`
	Comment  string `json:"comment" yaml:"comment"`
	Image    string `json:"image,omitempty" yaml:"image,omitempty"`
	Date     string `json:"date" yaml:"date"`
}

type Address struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	ZipCode string `json:"zipCode" yaml:"zipCode"`
	Country string `json:"country" yaml:"country"`
}

type Contact struct {
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email" yaml:"email"`
	WhatsApp string `json:"whatsapp" yaml:"whatsapp"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

type HotelInfo struct {
	Name        string      `json:"name" yaml:"name"`
	Tagline     string      `json:"tagline" yaml:"tagline"`
	Description string      `json:"description" yaml:"description"`
	Address     Address     `json:"address" yaml:"address"`
	Contact     Contact     `json:"contact" yaml:"contact"`
	SocialMedia SocialMedia `json:"socialMedia" yaml:"socialMedia"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	CheckIn     string      `json:"checkIn" yaml:"checkIn"`
	CheckOut    string      `json:"checkOut" yaml:"checkOut"`
	Policies    []string    `json:"policies" yaml:"policies"`
}

// Content is the static site snapshot: hotel facts plus the fallback catalog
// shown when the backend is unreachable.
type Content struct {
	Hotel        HotelInfo      `json:"hotel" yaml:"hotel"`
	Rooms        []Room         `json:"rooms" yaml:"rooms"`
	Services     []Service      `json:"services" yaml:"services"`
	Gallery      []GalleryImage `json:"gallery" yaml:"gallery"`
	Team         []TeamMember   `json:"team" yaml:"team"`
	Testimonials []Testimonial  `json:"testimonials" yaml:"testimonials"`
}

// RoomByID finds a room in the snapshot; ok is false for unknown ids.
func (c *Content) RoomByID(id string) (Room, bool) {
	for _, room := range c.Rooms {
		if room.ID == id {
			return room, true
		}
	}

	return Room{}, false
}

// MaxRoomPrice returns the highest nightly rate in the snapshot, used as the
// default price-ceiling on the rooms page.
func (c *Content) MaxRoomPrice() int {
	var maxPrice int

	for _, room := range c.Rooms {
		if room.Price > maxPrice {
			maxPrice = room.Price
		}
	}

	return maxPrice
}
