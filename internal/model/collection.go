package model

// FeaturedCollection is a curated look shown on the home page.
type FeaturedCollection struct {
	ID    int64
	Title string
	Image string
}

// TimeSlots are the bookable session start times.
var TimeSlots = []string{
	"10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM",
	"4:00 PM", "5:00 PM",
}
