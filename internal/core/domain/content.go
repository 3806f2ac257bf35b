package domain

import "time"

// Blog is a published article. Content is managed out of band; the API
// only ever reads these records.
type Blog struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	Title    string    `json:"title" bson:"title"`
	Category string    `json:"category" bson:"category"`
	Date     time.Time `json:"date" bson:"date"`
	Content  string    `json:"content" bson:"content"`
	Author   string    `json:"author" bson:"author"`
	Excerpt  string    `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Tags     []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Featured bool      `json:"featured" bson:"featured"`
	Likes    int       `json:"likes" bson:"likes"`
	Comments int       `json:"comments" bson:"comments"`
	ReadTime string    `json:"readTime,omitempty" bson:"read_time,omitempty"`
	Image    string    `json:"image,omitempty" bson:"image,omitempty"`
}

// Testimonial is client feedback. Only approved entries are served publicly.
type Testimonial struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	Name     string    `json:"name" bson:"name"`
	Country  string    `json:"country" bson:"country"`
	Message  string    `json:"message" bson:"message"`
	Rating   int       `json:"rating" bson:"rating"`
	Date     time.Time `json:"date" bson:"date"`
	Approved bool      `json:"approved" bson:"approved"`
}

// Client is a showcased customer on the marketing site.
type Client struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Industry    string    `json:"industry" bson:"industry"`
	Logo        string    `json:"logo,omitempty" bson:"logo,omitempty"`
	Description string    `json:"description" bson:"description"`
	Location    string    `json:"location" bson:"location"`
	Employees   string    `json:"employees" bson:"employees"`
	Website     string    `json:"website,omitempty" bson:"website,omitempty"`
	Testimonial string    `json:"testimonial,omitempty" bson:"testimonial,omitempty"`
	Rating      int       `json:"rating" bson:"rating"`
	Projects    int       `json:"projects" bson:"projects"`
	Years       int       `json:"years" bson:"years"`
	Featured    bool      `json:"featured" bson:"featured"`
	Date        time.Time `json:"date" bson:"date"`
}
