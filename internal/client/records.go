package client

// RegistrationRecord is one participant's stored registration as the server
// of record returns it. One record exists per participant per submission;
// bookers_email + bookers_phone + name identify it for update and delete.
type RegistrationRecord struct {
	BookersEmail             string           `json:"bookers_email"`
	BookersPhone             string           `json:"bookers_phone"`
	EventName                string           `json:"event_name"`
	Name                     string           `json:"name"`
	Age                      string           `json:"age,omitempty"`
	Gender                   string           `json:"gender,omitempty"`
	Origin                   string           `json:"origin,omitempty"`
	Contact                  string           `json:"contact,omitempty"`
	AttendingDates           []string         `json:"attendingDates"`
	TravelMode               string           `json:"travelmode"`
	DepartureFromHome        string           `json:"departure_from_home"`
	ArrivalAtVenue           string           `json:"arrival_at_venue"`
	Accommodation            bool             `json:"accommodation"`
	CotRequired              bool             `json:"cot_required"`
	DifficultyClimbingStairs bool             `json:"difficultyclimbingstairs"`
	LocalAssistance          bool             `json:"localassistance"`
	LocalAssistancePerson    string           `json:"localassistanceperson,omitempty"`
	Recordings               bool             `json:"recordings"`
	RecordPrograms           string           `json:"recordprograms,omitempty"`
	SpecialRequests          string           `json:"specialrequests,omitempty"`
	DatePreferences          []StoredDatePref `json:"datePreferences"`
}

// StoredDatePref is the stored per-date preference row inside a
// RegistrationRecord. Dates are DD-MM-YYYY.
type StoredDatePref struct {
	Date            string `json:"date"`
	MorningTea      string `json:"morning_tea"`
	MorningCoffee   string `json:"morning_coffee"`
	AfternoonTea    string `json:"afternoon_tea"`
	AfternoonCoffee string `json:"afternoon_coffee"`
	Breakfast       bool   `json:"breakfast"`
	Lunch           bool   `json:"lunch"`
	Dinner          bool   `json:"dinner"`
	PackedLunch     bool   `json:"packed_lunch"`
	PackedDinner    bool   `json:"packed_dinner"`
	DepartureTime   string `json:"departuretime"`
}

// DailyAnalytics is one attending date's aggregate counts.
type DailyAnalytics struct {
	Date                   string `json:"date"`
	MorningTeaWith         int    `json:"morning_tea_with"`
	MorningTeaWithout      int    `json:"morning_tea_without"`
	MorningCoffeeWith      int    `json:"morning_coffee_with"`
	MorningCoffeeWithout   int    `json:"morning_coffee_without"`
	AfternoonTeaWith       int    `json:"afternoon_tea_with"`
	AfternoonTeaWithout    int    `json:"afternoon_tea_without"`
	AfternoonCoffeeWith    int    `json:"afternoon_coffee_with"`
	AfternoonCoffeeWithout int    `json:"afternoon_coffee_without"`
	BreakfastCount         int    `json:"breakfast_count"`
	LunchCount             int    `json:"lunch_count"`
	DinnerCount            int    `json:"dinner_count"`
}

// DetailedAnalytics groups participants by the categories the organizers
// plan for: accommodation, cots, recordings, special requests and packed
// meals for the departure day.
type DetailedAnalytics struct {
	Accommodations  []AccommodationEntry `json:"accommodations"`
	Cots            []PersonEntry        `json:"cots"`
	Recordings      []RecordingEntry     `json:"recordings"`
	SpecialRequests []RequestEntry       `json:"special_requests"`
	PackedMeals     []PackedMealEntry    `json:"packed_meals"`
}

type AccommodationEntry struct {
	Date         string `json:"date"`
	Name         string `json:"name"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	Origin       string `json:"origin"`
	BookersEmail string `json:"bookers_email"`
	Contact      string `json:"contact"`
}

type PersonEntry struct {
	Name         string `json:"name"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	Origin       string `json:"origin"`
	BookersEmail string `json:"bookers_email"`
	Contact      string `json:"contact"`
}

type RecordingEntry struct {
	Name           string `json:"name"`
	BookersEmail   string `json:"bookers_email"`
	Contact        string `json:"contact"`
	RecordPrograms string `json:"recordprograms"`
}

type RequestEntry struct {
	Name         string `json:"name"`
	BookersEmail string `json:"bookers_email"`
	Contact      string `json:"contact"`
	Request      string `json:"request"`
}

type PackedMealEntry struct {
	Date         string `json:"date"`
	Name         string `json:"name"`
	BookersEmail string `json:"bookers_email"`
	Contact      string `json:"contact"`
	Age          string `json:"age"`
	Origin       string `json:"origin"`
	PackedLunch  bool   `json:"packed_lunch"`
	PackedDinner bool   `json:"packed_dinner"`
}

// BookOrder is one book line item in the shop.
type BookOrder struct {
	EmailID  string `json:"email_id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	BookName string `json:"book_name"`
	Language string `json:"language"`
}
