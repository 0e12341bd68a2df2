package models

import (
	"time"
)

// Project represents a completed construction project in the portfolio
type Project struct {
	ID               string     `gorm:"primaryKey;type:varchar(64)" json:"_id"`
	ProjectName      string     `gorm:"type:varchar(255)" json:"projectName"`
	BriefDescription string     `gorm:"type:text" json:"briefDescription"`
	FullDescription  string     `gorm:"type:text" json:"fullDescription"`
	MainImage        string     `gorm:"type:text" json:"mainImage"`
	GalleryImage1    string     `gorm:"type:text" json:"galleryImage1"`
	ProjectLocation  string     `gorm:"type:varchar(255)" json:"projectLocation"`
	CompletionDate   *time.Time `json:"completionDate,omitempty"`
	ClientType       string     `gorm:"type:varchar(100);index" json:"clientType"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"_createdDate"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"_updatedDate"`
}

func (Project) TableName() string {
	return "projects"
}

// Service represents an offered construction service
type Service struct {
	ID                  string    `gorm:"primaryKey;type:varchar(64)" json:"_id"`
	ServiceName         string    `gorm:"type:varchar(255)" json:"serviceName"`
	ShortDescription    string    `gorm:"type:text" json:"shortDescription"`
	DetailedDescription string    `gorm:"type:text" json:"detailedDescription"`
	ServiceImage        string    `gorm:"type:text" json:"serviceImage"`
	ServiceCategory     string    `gorm:"type:varchar(100);index" json:"serviceCategory"`
	CallToActionLabel   string    `gorm:"type:varchar(100)" json:"callToActionLabel"`
	CallToActionLink    string    `gorm:"type:text" json:"callToActionLink"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"_createdDate"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"_updatedDate"`
}

func (Service) TableName() string {
	return "services"
}

// HasCallToAction reports whether both the label and the link are set
func (s Service) HasCallToAction() bool {
	return s.CallToActionLabel != "" && s.CallToActionLink != ""
}

// Testimonial represents a client quote
type Testimonial struct {
	ID                 string    `gorm:"primaryKey;type:varchar(64)" json:"_id"`
	ClientName         string    `gorm:"type:varchar(255)" json:"clientName"`
	TestimonialText    string    `gorm:"type:text" json:"testimonialText"`
	ClientTitleCompany string    `gorm:"type:varchar(255)" json:"clientTitleCompany"`
	ProjectService     string    `gorm:"type:varchar(255)" json:"projectService"`
	ClientPhoto        string    `gorm:"type:text" json:"clientPhoto"`
	Rating             int       `json:"rating"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"_createdDate"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"_updatedDate"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

// Stars is the number of stars to display; unrated testimonials show five.
func (t Testimonial) Stars() int {
	switch {
	case t.Rating <= 0:
		return 5
	case t.Rating > 5:
		return 5
	default:
		return t.Rating
	}
}

// Initial is the avatar fallback when there is no client photo.
func (t Testimonial) Initial() string {
	for _, r := range t.ClientName {
		return string(r)
	}
	return ""
}

// Inquiry represents a contact form submission
type Inquiry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone"`
	ProjectType string    `gorm:"type:varchar(50)" json:"projectType"`
	Message     string    `gorm:"type:text" json:"message"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
