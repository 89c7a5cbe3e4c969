package store

import (
	"strconv"
	"time"

	"github.com/vogue360/studio/internal/model"
)

// Collection names.
const (
	BookingsName = "bookings"
	CatalogName  = "catalog"
)

const unsplash = "https://images.unsplash.com/"

func unsplashImage(photo string, width int) string {
	return unsplash + photo + "?ixlib=rb-4.0.3&auto=format&fit=crop&q=80&w=" + strconv.Itoa(width)
}

// SeedBookings returns the bookings the console starts with.
func SeedBookings() []model.Booking {
	created := time.Date(2023, time.July, 1, 9, 0, 0, 0, time.UTC)
	return []model.Booking{
		{
			ID: 1, Name: "Emma Wilson", Email: "emma@example.com", Phone: "(555) 123-4567",
			Date: "2023-07-15", Time: "2:00 PM",
			Message: "Looking for styling advice for a wedding.",
			Status:  model.BookingConfirmed, CreatedAt: created,
		},
		{
			ID: 2, Name: "Michael Brown", Email: "michael@example.com", Phone: "(555) 987-6543",
			Date: "2023-07-16", Time: "11:00 AM",
			Message: "Need help updating my professional wardrobe.",
			Status:  model.BookingConfirmed, CreatedAt: created.Add(time.Hour),
		},
		{
			ID: 3, Name: "Sophia Lee", Email: "sophia@example.com", Phone: "(555) 456-7890",
			Date: "2023-07-17", Time: "4:00 PM",
			Message: "Interested in learning about sustainable fashion options.",
			Status:  model.BookingPending, CreatedAt: created.Add(2 * time.Hour),
		},
		{
			ID: 4, Name: "James Johnson", Email: "james@example.com", Phone: "(555) 234-5678",
			Date: "2023-07-18", Time: "1:00 PM",
			Message: "Looking for a complete wardrobe refresh.",
			Status:  model.BookingConfirmed, CreatedAt: created.Add(3 * time.Hour),
		},
		{
			ID: 5, Name: "Isabella Garcia", Email: "isabella@example.com", Phone: "(555) 876-5432",
			Date: "2023-07-19", Time: "3:00 PM",
			Message: "Need styling for a photoshoot.",
			Status:  model.BookingPending, CreatedAt: created.Add(4 * time.Hour),
		},
	}
}

// SeedCatalog returns the gallery pieces the site starts with.
func SeedCatalog() []model.CatalogItem {
	return []model.CatalogItem{
		{ID: 1, Name: "Classic Denim Jacket", Category: model.CategoryOuterwear, Price: 129.99,
			Image: unsplashImage("photo-1523205771623-e0faa4d2813d", 2069)},
		{ID: 2, Name: "Floral Summer Dress", Category: model.CategoryDresses, Price: 89.99,
			Image: unsplashImage("photo-1585487000160-6ebcfceb0d03", 2574)},
		{ID: 3, Name: "Slim Fit Chinos", Category: model.CategoryPants, Price: 69.99,
			Image: unsplashImage("photo-1552374196-1ab2a1c593e8", 2187)},
		{ID: 4, Name: "Oversized Knit Sweater", Category: model.CategoryTops, Price: 79.99,
			Image: unsplashImage("photo-1596755094514-f87e34085b2c", 2188)},
		{ID: 5, Name: "Leather Ankle Boots", Category: model.CategoryFootwear, Price: 149.99,
			Image: unsplashImage("photo-1621996346565-e3dbc646d9a9", 2380)},
		{ID: 6, Name: "Silk Blouse", Category: model.CategoryTops, Price: 99.99,
			Image: unsplashImage("photo-1581044777550-4cfa60707c03", 986)},
		{ID: 7, Name: "Tailored Blazer", Category: model.CategoryOuterwear, Price: 199.99,
			Image: unsplashImage("photo-1497339100210-9e87df79c218", 2560)},
		{ID: 8, Name: "Pleated Midi Skirt", Category: model.CategoryBottoms, Price: 79.99,
			Image: unsplashImage("photo-1502716119720-b23a93e5fe1b", 2540)},
	}
}

// FeaturedCollections returns the home page collections.
func FeaturedCollections() []model.FeaturedCollection {
	return []model.FeaturedCollection{
		{ID: 1, Title: "Autumn Essentials", Image: unsplashImage("photo-1581044777550-4cfa60707c03", 986)},
		{ID: 2, Title: "Evening Elegance", Image: unsplashImage("photo-1539109136881-3be0616acf4b", 987)},
		{ID: 3, Title: "Urban Chic", Image: unsplashImage("photo-1496747611176-843222e1e57c", 2073)},
	}
}

// Bookings is the shared booking collection.
type Bookings = Collection[model.Booking]

// Catalog is the shared catalog collection.
type Catalog = Collection[model.CatalogItem]

// NewBookings returns a booking collection holding the seeded bookings.
func NewBookings() *Bookings {
	return NewCollection(BookingsName, SeedBookings())
}

// NewCatalog returns a catalog collection holding the seeded pieces.
func NewCatalog() *Catalog {
	return NewCollection(CatalogName, SeedCatalog())
}
