package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"dogspot/config"
	"dogspot/database"
	"dogspot/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the database with demo data: two clients, three sitters, three open
// requests and five businesses, all in Tel Aviv.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.MongoClient.Database(database.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range []string{"users", "sitters", "requests", "businesses"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}
	now := time.Now()

	dogs := []models.Dog{
		{
			ID:             "1",
			Name:           "מקס",
			Breed:          "לברדור",
			Age:            3,
			Size:           "large",
			Temperament:    "energetic",
			Image:          "https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg?auto=compress&cs=tinysrgb&w=400",
			AdditionalInfo: "אוהב לשחק עם כלבים אחרים",
		},
		{
			ID:             "2",
			Name:           "לונה",
			Breed:          "פודל",
			Age:            2,
			Size:           "medium",
			Temperament:    "calm",
			Image:          "https://images.pexels.com/photos/1805164/pexels-photo-1805164.jpeg?auto=compress&cs=tinysrgb&w=400",
			AdditionalInfo: "רגועה ונחמדה",
		},
	}

	clients := []models.Client{
		{
			ID:           "1",
			Name:         "דני כהן",
			Email:        "danny@example.com",
			Phone:        "050-1234567",
			UserType:     "client",
			Neighborhood: "פלורנטין",
			CreatedAt:    now,
			Dogs:         []models.Dog{dogs[0]},
		},
		{
			ID:           "2",
			Name:         "שרה לוי",
			Email:        "sara@example.com",
			Phone:        "052-9876543",
			UserType:     "client",
			Neighborhood: "נווה צדק",
			CreatedAt:    now,
			Dogs:         []models.Dog{dogs[1]},
		},
	}

	var users []interface{}
	for _, cl := range clients {
		users = append(users, models.User{
			ID:           cl.ID,
			Name:         cl.Name,
			Email:        cl.Email,
			Phone:        cl.Phone,
			UserType:     cl.UserType,
			Neighborhood: cl.Neighborhood,
			PasswordHash: string(hash),
			CreatedAt:    now,
		})
	}

	sitters := []interface{}{
		models.Sitter{
			ID:            "1",
			Name:          "מיכל אברהם",
			Email:         "michal@example.com",
			Phone:         "054-1111111",
			UserType:      "sitter",
			Neighborhood:  "פלורנטין",
			Description:   "אוהבת כלבים מגיל צעיר, בעלת ניסיון של 5 שנים בטיפול בכלבים מכל הגדלים",
			Experience:    "5+ שנים",
			Neighborhoods: []string{"פלורנטין", "נווה צדק", "רוטשילד"},
			Services: []models.SitterService{
				{ID: "1", Type: "walk_30", Price: 40},
				{ID: "2", Type: "walk_60", Price: 70},
				{ID: "3", Type: "home_visit", Price: 80},
			},
			Availability: []models.Availability{
				{Day: "ראשון", StartTime: "08:00", EndTime: "18:00"},
				{Day: "שני", StartTime: "08:00", EndTime: "18:00"},
				{Day: "שלישי", StartTime: "08:00", EndTime: "18:00"},
			},
			Rating:       4.8,
			ReviewCount:  23,
			Verified:     true,
			PasswordHash: string(hash),
			CreatedAt:    now,
		},
		models.Sitter{
			ID:            "2",
			Name:          "יוסי דוד",
			Email:         "yossi@example.com",
			Phone:         "053-2222222",
			UserType:      "sitter",
			Neighborhood:  "דיזנגוף",
			Description:   "מאמן כלבים מקצועי עם התמחות בכלבים גדולים ואנרגטיים",
			Experience:    "8+ שנים",
			Neighborhoods: []string{"דיזנגוף", "תל אביב צפון", "רמת אביב"},
			Services: []models.SitterService{
				{ID: "1", Type: "walk_30", Price: 50},
				{ID: "2", Type: "walk_60", Price: 85},
				{ID: "3", Type: "home_visit", Price: 100},
			},
			Availability: []models.Availability{
				{Day: "ראשון", StartTime: "06:00", EndTime: "20:00"},
				{Day: "שני", StartTime: "06:00", EndTime: "20:00"},
				{Day: "רביעי", StartTime: "06:00", EndTime: "20:00"},
			},
			Rating:       4.9,
			ReviewCount:  41,
			Verified:     true,
			PasswordHash: string(hash),
			CreatedAt:    now,
		},
		models.Sitter{
			ID:            "3",
			Name:          "רונית גולן",
			Email:         "ronit@example.com",
			Phone:         "052-3333333",
			UserType:      "sitter",
			Neighborhood:  "יפו העתיקה",
			Description:   "מתמחה בכלבים קטנים וגורים, בעלת סבלנות רבה ואהבה אמיתית לבעלי חיים",
			Experience:    "3-5 שנים",
			Neighborhoods: []string{"יפו העתיקה", "עג׳מי", "נווה צדק"},
			Services: []models.SitterService{
				{ID: "1", Type: "walk_30", Price: 35},
				{ID: "2", Type: "walk_60", Price: 60},
				{ID: "3", Type: "home_visit", Price: 75},
			},
			Availability: []models.Availability{
				{Day: "שני", StartTime: "09:00", EndTime: "17:00"},
				{Day: "רביעי", StartTime: "09:00", EndTime: "17:00"},
				{Day: "שישי", StartTime: "09:00", EndTime: "15:00"},
			},
			Rating:       4.7,
			ReviewCount:  18,
			Verified:     true,
			PasswordHash: string(hash),
			CreatedAt:    now,
		},
	}

	requests := []interface{}{
		models.Request{
			ID:                  "1",
			ClientID:            "1",
			Client:              clients[0],
			ServiceType:         "walk_30",
			Date:                now.Add(2 * time.Hour),
			Time:                "18:00",
			Dog:                 dogs[0],
			Neighborhood:        "פלורנטין",
			SpecialInstructions: "מקס אוהב לרוץ בפארק, אנא הביאו כדור",
			OfferedPrice:        45,
			Flexible:            true,
			Status:              models.RequestStatusOpen,
			CreatedAt:           now,
		},
		models.Request{
			ID:                  "2",
			ClientID:            "other-user-1",
			Client:              clients[1],
			ServiceType:         "home_visit",
			Date:                now.Add(24 * time.Hour),
			Time:                "14:00",
			Dog:                 dogs[1],
			Neighborhood:        "נווה צדק",
			SpecialInstructions: "לונה צריכה תרופה בשעה 15:00",
			OfferedPrice:        80,
			Flexible:            false,
			Status:              models.RequestStatusOpen,
			CreatedAt:           now,
		},
		models.Request{
			ID:           "3",
			ClientID:     "other-user-2",
			Client:       clients[0],
			ServiceType:  "walk_60",
			Date:         now.Add(4 * time.Hour),
			Time:         "20:00",
			Dog:          dogs[0],
			Neighborhood: "פלורנטין",
			OfferedPrice: 75,
			Flexible:     true,
			Status:       models.RequestStatusOpen,
			CreatedAt:    now,
		},
	}

	fullWeek := func(open, close, fridayClose string, fridayOpen bool) []models.OpeningHours {
		hours := []models.OpeningHours{
			{Day: "ראשון", IsOpen: true, OpenTime: open, CloseTime: close},
			{Day: "שני", IsOpen: true, OpenTime: open, CloseTime: close},
			{Day: "שלישי", IsOpen: true, OpenTime: open, CloseTime: close},
			{Day: "רביעי", IsOpen: true, OpenTime: open, CloseTime: close},
			{Day: "חמישי", IsOpen: true, OpenTime: open, CloseTime: close},
		}
		if fridayOpen {
			hours = append(hours, models.OpeningHours{Day: "שישי", IsOpen: true, OpenTime: open, CloseTime: fridayClose})
		} else {
			hours = append(hours, models.OpeningHours{Day: "שישי", IsOpen: false})
		}
		return append(hours, models.OpeningHours{Day: "שבת", IsOpen: false})
	}

	businesses := []interface{}{
		models.Business{
			ID:          "1",
			Name:        "פנסיון כלבים \"בית חם\"",
			Category:    "pension",
			Description: "פנסיון מוסדר ומקצועי לכלבים מכל הגדלים. צוות מנוסה, מתקנים מודרניים ואווירה ביתית.",
			Image:       "https://images.pexels.com/photos/1254140/pexels-photo-1254140.jpeg?auto=compress&cs=tinysrgb&w=400",
			Gallery: []string{
				"https://images.pexels.com/photos/1254140/pexels-photo-1254140.jpeg?auto=compress&cs=tinysrgb&w=400",
				"https://images.pexels.com/photos/2253275/pexels-photo-2253275.jpeg?auto=compress&cs=tinysrgb&w=400",
			},
			Address:      "רחוב הרצל 45, תל אביב",
			Neighborhood: "פלורנטין",
			Phone:        "03-1234567",
			Email:        "info@beit-cham.co.il",
			Rating:       4.7,
			ReviewCount:  34,
			Services: []models.BusinessService{
				{ID: "1", Name: "לינה יומית", Price: 120, Description: "לינה מלאה עם ארוחות ופעילות", Duration: "יום"},
				{ID: "2", Name: "חצי יום", Price: 70, Description: "שהייה של 4-6 שעות", Duration: "4-6 שעות"},
			},
			OpeningHours: fullWeek("07:00", "19:00", "15:00", true),
			Verified:     true,
			CreatedAt:    now,
		},
		models.Business{
			ID:           "2",
			Name:         "וטרינר ד\"ר כהן",
			Category:     "veterinary",
			Description:  "מרפאה וטרינרית מתקדמת עם ציוד חדיש. התמחות בכירורגיה ורפואה פנימית.",
			Image:        "https://images.pexels.com/photos/6235086/pexels-photo-6235086.jpeg?auto=compress&cs=tinysrgb&w=400",
			Address:      "שדרות רוטשילד 12, תל אביב",
			Neighborhood: "רוטשילד",
			Phone:        "03-9876543",
			Email:        "clinic@dr-cohen.co.il",
			Rating:       4.9,
			ReviewCount:  67,
			Services: []models.BusinessService{
				{ID: "1", Name: "בדיקה כללית", Price: 180, Description: "בדיקה רפואית מקיפה", Duration: "30 דק"},
				{ID: "2", Name: "חיסונים", Price: 150, Description: "חיסון שנתי מלא", Duration: "15 דק"},
				{ID: "3", Name: "עקירת שיניים", Price: 400, Description: "הליך כירורגי בהרדמה", Duration: "60 דק"},
			},
			OpeningHours: fullWeek("08:00", "18:00", "", false),
			Verified:     true,
			CreatedAt:    now,
		},
		models.Business{
			ID:           "3",
			Name:         "חנות \"כל-בו לחיות מחמד\"",
			Category:     "pet_store",
			Description:  "חנות מקצועית למזון, ציוד ואביזרים לכלבים. מבחר ענק של מותגים מובילים.",
			Image:        "https://images.pexels.com/photos/4498185/pexels-photo-4498185.jpeg?auto=compress&cs=tinysrgb&w=400",
			Address:      "רחוב דיזנגוף 89, תל אביב",
			Neighborhood: "דיזנגוף",
			Phone:        "03-5555555",
			Rating:       4.5,
			ReviewCount:  23,
			Services: []models.BusinessService{
				{ID: "1", Name: "מזון יבש פרימיום", Price: 180, Description: "שק 15 ק\"ג"},
				{ID: "2", Name: "רצועה מעוצבת", Price: 45, Description: "רצועה איכותית"},
				{ID: "3", Name: "צעצועים", Price: 25, Description: "צעצוע לעיסה"},
			},
			OpeningHours: fullWeek("09:00", "20:00", "15:00", true),
			Verified:     true,
			CreatedAt:    now,
		},
		models.Business{
			ID:           "4",
			Name:         "מאלף כלבים \"כלב טוב\"",
			Category:     "trainer",
			Description:  "מאלף מקצועי עם ניסיון של 10 שנים. התמחות באילוף בסיסי ותיקון בעיות התנהגות.",
			Image:        "https://images.pexels.com/photos/4498185/pexels-photo-4498185.jpeg?auto=compress&cs=tinysrgb&w=400",
			Address:      "פארק הירקון, תל אביב",
			Neighborhood: "צפון תל אביב",
			Phone:        "052-8888888",
			Rating:       4.9,
			ReviewCount:  28,
			Services: []models.BusinessService{
				{ID: "1", Name: "אילוף בסיסי", Price: 300, Description: "שיעור פרטי 60 דק", Duration: "60 דק"},
				{ID: "2", Name: "תיקון בעיות התנהגות", Price: 400, Description: "טיפול מותאם אישית", Duration: "90 דק"},
				{ID: "3", Name: "קורס אילוף קבוצתי", Price: 150, Description: "שיעור קבוצתי שבועי", Duration: "45 דק"},
			},
			OpeningHours: fullWeek("08:00", "18:00", "15:00", true),
			Verified:     true,
			CreatedAt:    now,
		},
		models.Business{
			ID:           "5",
			Name:         "ספר כלבים \"פרווה מושלמת\"",
			Category:     "grooming",
			Description:  "מכון טיפוח מקצועי לכלבים. תספורות, רחצה וטיפוח מלא על ידי מומחים.",
			Image:        "https://images.pexels.com/photos/6816861/pexels-photo-6816861.jpeg?auto=compress&cs=tinysrgb&w=400",
			Address:      "רחוב אלנבי 67, תל אביב",
			Neighborhood: "לב העיר",
			Phone:        "03-7777777",
			Rating:       4.8,
			ReviewCount:  41,
			Services: []models.BusinessService{
				{ID: "1", Name: "תספורת מלאה", Price: 120, Description: "תספורת + רחצה + ייבוש", Duration: "90 דק"},
				{ID: "2", Name: "רחצה וייבוש", Price: 60, Description: "רחצה עם שמפו מקצועי", Duration: "45 דק"},
				{ID: "3", Name: "חיתוך ציפורניים", Price: 30, Description: "חיתוך מקצועי", Duration: "15 דק"},
			},
			OpeningHours: fullWeek("09:00", "17:00", "", false),
			Verified:     true,
			CreatedAt:    now,
		},
	}

	if _, err := db.Collection("users").InsertMany(ctx, users); err != nil {
		log.Fatalf("Failed to insert users: %v", err)
	}
	if _, err := db.Collection("sitters").InsertMany(ctx, sitters); err != nil {
		log.Fatalf("Failed to insert sitters: %v", err)
	}
	if _, err := db.Collection("requests").InsertMany(ctx, requests); err != nil {
		log.Fatalf("Failed to insert requests: %v", err)
	}
	if _, err := db.Collection("businesses").InsertMany(ctx, businesses); err != nil {
		log.Fatalf("Failed to insert businesses: %v", err)
	}

	fmt.Printf("Seeded %d users, %d sitters, %d requests, %d businesses\n",
		len(users), len(sitters), len(requests), len(businesses))
}
