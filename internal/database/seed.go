package database

import (
	"encoding/json"
	"log/slog"

	"github.com/terrabuddy/terrabuddy-backend/internal/models"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedBuddy struct {
	Name          string
	Avatar        string
	Bio           string
	Rating        float64
	TotalSessions int
	HourlyRate    float64
	Availability  []string
	Specialties   []string
	Answers       []quiz.Answer
}

var seedBuddies = []seedBuddy{
	{
		Name:          "Ana Kovač",
		Avatar:        "/friendly-slovenian-woman-smiling-warmly-portrait.jpg",
		Bio:           "Živjo! I'm Ana, a former teacher from Ljubljana who loves deep conversations and walks along the Ljubljanica river. Everyone deserves someone who truly listens.",
		Rating:        4.9,
		TotalSessions: 234,
		HourlyRate:    25,
		Availability:  []string{"Mon", "Wed", "Fri"},
		Specialties:   []string{"Active Listening", "Life Transitions", "Career Talk"},
		Answers: []quiz.Answer{
			{QuestionID: 1, Answer: "B"}, {QuestionID: 2, Answer: "A"}, {QuestionID: 3, Answer: "A"},
			{QuestionID: 4, Answer: "B"}, {QuestionID: 5, Answer: "B"}, {QuestionID: 6, Answer: "B"},
			{QuestionID: 7, Answer: "A"}, {QuestionID: 8, Answer: "B"}, {QuestionID: 9, Answer: "B"},
			{QuestionID: 10, Answer: "B"},
		},
	},
	{
		Name:          "Luka Horvat",
		Avatar:        "/friendly-slovenian-man-with-beard-smiling-portrait.jpg",
		Bio:           "Hej! I'm Luka, a musician from Maribor. Life threw me some curveballs and I learned the power of having someone in your corner.",
		Rating:        4.8,
		TotalSessions: 156,
		HourlyRate:    22,
		Availability:  []string{"Tue", "Thu", "Sat", "Sun"},
		Specialties:   []string{"Creative Expression", "Stress Relief", "Casual Hangouts"},
		Answers: []quiz.Answer{
			{QuestionID: 1, Answer: "A"}, {QuestionID: 2, Answer: "B"}, {QuestionID: 3, Answer: "A"},
			{QuestionID: 4, Answer: "A"}, {QuestionID: 5, Answer: "A"}, {QuestionID: 6, Answer: "A"},
			{QuestionID: 7, Answer: "B"}, {QuestionID: 8, Answer: "A"}, {QuestionID: 9, Answer: "A"},
			{QuestionID: 10, Answer: "A"},
		},
	},
	{
		Name:          "Maja Novak",
		Avatar:        "/friendly-slovenian-woman-yoga-instructor-warm-smil.jpg",
		Bio:           "Živjo! I'm Maja, a yoga instructor from Bled. I specialize in helping people find calm in the chaos of daily life.",
		Rating:        5.0,
		TotalSessions: 312,
		HourlyRate:    28,
		Availability:  []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		Specialties:   []string{"Mindfulness", "Parenting Support", "Anxiety Relief"},
		Answers: []quiz.Answer{
			{QuestionID: 1, Answer: "B"}, {QuestionID: 2, Answer: "A"}, {QuestionID: 3, Answer: "B"},
			{QuestionID: 4, Answer: "B"}, {QuestionID: 5, Answer: "B"}, {QuestionID: 6, Answer: "B"},
			{QuestionID: 7, Answer: "A"}, {QuestionID: 8, Answer: "B"}, {QuestionID: 9, Answer: "B"},
			{QuestionID: 10, Answer: "B"},
		},
	},
	{
		Name:          "Matic Zupan",
		Avatar:        "/friendly-slovenian-man-glasses-tech-smiling-portra.jpg",
		Bio:           "Hej! I'm Matic, a software developer from Kranj who discovered the importance of human connection. Let's chat!",
		Rating:        4.7,
		TotalSessions: 89,
		HourlyRate:    20,
		Availability:  []string{"Sat", "Sun"},
		Specialties:   []string{"Tech Talk", "Social Anxiety", "Gaming Buddy"},
		Answers: []quiz.Answer{
			{QuestionID: 1, Answer: "B"}, {QuestionID: 2, Answer: "A"}, {QuestionID: 3, Answer: "B"},
			{QuestionID: 4, Answer: "B"}, {QuestionID: 5, Answer: "A"}, {QuestionID: 6, Answer: "A"},
			{QuestionID: 7, Answer: "B"}, {QuestionID: 8, Answer: "B"}, {QuestionID: 9, Answer: "A"},
			{QuestionID: 10, Answer: "B"},
		},
	},
}

// SeedBuddies inserts the launch catalog of approved buddies. Idempotent:
// an existing buddy with the same name is left alone.
func SeedBuddies(db *gorm.DB) error {
	for _, sb := range seedBuddies {
		var count int64
		if err := db.Model(&models.Buddy{}).Where("name = ?", sb.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		answers, _ := json.Marshal(sb.Answers)
		availability, _ := json.Marshal(sb.Availability)
		specialties, _ := json.Marshal(sb.Specialties)

		buddy := models.Buddy{
			Name:          sb.Name,
			Avatar:        sb.Avatar,
			Bio:           sb.Bio,
			Status:        models.StatusApproved,
			Rating:        sb.Rating,
			TotalSessions: sb.TotalSessions,
			HourlyRate:    sb.HourlyRate,
			Availability:  datatypes.JSON(availability),
			Specialties:   datatypes.JSON(specialties),
			Verified:      true,
			QuizAnswers:   datatypes.JSON(answers),
		}
		if err := db.Create(&buddy).Error; err != nil {
			return err
		}
		slog.Info("seeded buddy", "name", sb.Name)
	}
	return nil
}
