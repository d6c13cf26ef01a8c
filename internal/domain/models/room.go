package models

// MaxRoomPhotos is enforced client-side before an upload is attempted.
const MaxRoomPhotos = 3

type RoomPhoto struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	IsCover bool   `json:"isCover"`
}

type RoomList struct {
	ID            string  `json:"id"`
	RoomNumber    string  `json:"roomNumber"`
	RoomName      string  `json:"roomName"`
	Description   string  `json:"description,omitempty"`
	Beds          int     `json:"beds"`
	BedsTypes     string  `json:"bedsTypes"`
	PriceForNight float64 `json:"priceForNight"`
	CoverPhotoURL string  `json:"coverPhotoUrl,omitempty"`
}

type RoomDetail struct {
	ID            string      `json:"id"`
	RoomNumber    string      `json:"roomNumber"`
	RoomName      string      `json:"roomName"`
	Description   string      `json:"description,omitempty"`
	Beds          int         `json:"beds"`
	BedsTypes     string      `json:"bedsTypes"`
	PriceForNight float64     `json:"priceForNight"`
	Photos        []RoomPhoto `json:"photos"`
}

// CoverPhoto returns the photo flagged for primary display, if any.
func (r RoomDetail) CoverPhoto() (RoomPhoto, bool) {
	for _, p := range r.Photos {
		if p.IsCover {
			return p, true
		}
	}
	return RoomPhoto{}, false
}

type CreateRoom struct {
	RoomNumber    string  `json:"roomNumber"`
	RoomName      string  `json:"roomName"`
	Description   string  `json:"description"`
	Beds          int     `json:"beds"`
	BedsTypes     string  `json:"bedsTypes"`
	PriceForNight float64 `json:"priceForNight"`
}

// UpdateRoom is marshalled with empty string fields stripped so a partial
// staff edit never blanks server-side values.
type UpdateRoom struct {
	RoomNumber    string   `json:"roomNumber,omitempty"`
	RoomName      string   `json:"roomName,omitempty"`
	Description   string   `json:"description,omitempty"`
	Beds          *int     `json:"beds,omitempty"`
	BedsTypes     string   `json:"bedsTypes,omitempty"`
	PriceForNight *float64 `json:"priceForNight,omitempty"`
}
