package web

import (
	"net/http"

	"github.com/HackerShabi/hotelwebsite/internal/api"
	"github.com/HackerShabi/hotelwebsite/internal/catalog"
)

type homeData struct {
	Hotel        catalog.HotelInfo
	Rooms        []catalog.Room
	Services     []catalog.Service
	Testimonials []catalog.Testimonial
	Notice       string
}

// homeHandler shows the featured rooms and services. Live data comes from the
// backend; when it is unreachable the embedded snapshot stands in so the
// marketing page still renders, with a notice instead of a broken section.
func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := homeData{
		Hotel:        s.content.Hotel,
		Testimonials: s.content.Testimonials,
	}

	rooms, err := s.apiClient.ListRooms(ctx, api.RoomFilter{Featured: api.Bool(true), Available: api.Bool(true)})
	if err != nil {
		s.l.LogErrorf("Could not fetch featured rooms: %v", err.Error())

		data.Notice = "Live availability is temporarily unavailable."
		rooms = featuredRooms(s.content.Rooms)
	}

	services, err := s.apiClient.ListServices(ctx, api.ServiceFilter{Featured: api.Bool(true), Available: api.Bool(true)})
	if err != nil {
		s.l.LogErrorf("Could not fetch featured services: %v", err.Error())

		data.Notice = "Live availability is temporarily unavailable."
		services = featuredServices(s.content.Services)
	}

	data.Rooms = rooms
	data.Services = services

	s.render(w, http.StatusOK, "home.html", data)
}

func featuredRooms(rooms []catalog.Room) []catalog.Room {
	var featured []catalog.Room

	for _, room := range rooms {
		if room.Featured && room.Available {
			featured = append(featured, room)
		}
	}

	return featured
}

func featuredServices(services []catalog.Service) []catalog.Service {
	var featured []catalog.Service

	for _, service := range services {
		if service.Featured && service.Available {
			featured = append(featured, service)
		}
	}

	return featured
}

type aboutData struct {
	Hotel        catalog.HotelInfo
	Team         []catalog.TeamMember
	Testimonials []catalog.Testimonial
}

func (s *Server) aboutHandler(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "about.html", aboutData{
		Hotel:        s.content.Hotel,
		Team:         s.content.Team,
		Testimonials: s.content.Testimonials,
	})
}

type servicesData struct {
	Hotel    catalog.HotelInfo
	Services []catalog.Service
}

func (s *Server) servicesHandler(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "services.html", servicesData{
		Hotel:    s.content.Hotel,
		Services: s.content.Services,
	})
}

type galleryData struct {
	Hotel      catalog.HotelInfo
	Images     []catalog.GalleryImage
	Category   string
	Categories []catalog.GalleryCategory
}

func (s *Server) galleryHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	images := s.content.Gallery

	if category != "" && category != "all" {
		filtered := make([]catalog.GalleryImage, 0, len(images))

		for _, img := range images {
			if string(img.Category) == category {
				filtered = append(filtered, img)
			}
		}

		images = filtered
	}

	s.render(w, http.StatusOK, "gallery.html", galleryData{
		Hotel:    s.content.Hotel,
		Images:   images,
		Category: category,
		Categories: []catalog.GalleryCategory{
			catalog.CategoryRooms,
			catalog.CategoryRestaurant,
			catalog.CategorySpa,
			catalog.CategoryExterior,
			catalog.CategoryAmenities,
		},
	})
}

type contactData struct {
	Hotel       catalog.HotelInfo
	Name        string
	Email       string
	Subject     string
	Message     string
	FieldErrors map[string][]string
}

func (s *Server) contactHandler(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "contact.html", contactData{Hotel: s.content.Hotel})
}

// contactSubmitHandler validates the enquiry form and renders a confirmation.
// The site keeps no copy of the message; the confirmation is the whole flow.
func (s *Server) contactSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	data := contactData{
		Hotel:       s.content.Hotel,
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Subject:     r.PostFormValue("subject"),
		Message:     r.PostFormValue("message"),
		FieldErrors: make(map[string][]string),
	}

	if data.Name == "" {
		data.FieldErrors["name"] = append(data.FieldErrors["name"], "provide your name")
	}

	if data.Email == "" {
		data.FieldErrors["email"] = append(data.FieldErrors["email"], "provide your email")
	}

	if data.Message == "" {
		data.FieldErrors["message"] = append(data.FieldErrors["message"], "provide a message")
	}

	if len(data.FieldErrors) > 0 {
		s.render(w, http.StatusBadRequest, "contact.html", data)

		return
	}

	s.render(w, http.StatusOK, "contact_sent.html", data)
}
