package models

// Fixed lookup tables shared by the feed pipelines and the card rendering
// layer. The Hebrew labels are part of the product copy and must stay in
// sync with the mobile client.

// ServiceTypes maps a sitter service code to its display label.
var ServiceTypes = map[string]string{
	"walk_30":    "הליכה 30 דק׳",
	"walk_60":    "הליכה 60 דק׳",
	"home_visit": "ביקור בית",
}

// BusinessCategories maps a business category code to its display label.
var BusinessCategories = map[string]string{
	"pension":    "פנסיון",
	"pet_store":  "חנות ציוד ומזון",
	"trainer":    "מאלף",
	"grooming":   "ספר (טיפוח)",
	"veterinary": "וטרינר",
}

// DogSizes maps a dog size code to its display label.
var DogSizes = map[string]string{
	"small":  "קטן",
	"medium": "בינוני",
	"large":  "גדול",
}

// HebrewWeekdays is indexed by time.Weekday (Sunday first).
var HebrewWeekdays = [7]string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}

// ExperienceLevels is the closed set of sitter experience labels, ascending.
var ExperienceLevels = []string{"מתחיל", "1-2 שנים", "3-5 שנים", "5+ שנים", "10+ שנים"}

// ExperienceRank orders the experience labels for sorting. Labels outside
// the closed set rank as 0.
var ExperienceRank = map[string]int{
	"מתחיל":    1,
	"1-2 שנים": 2,
	"3-5 שנים": 3,
	"5+ שנים":  4,
	"10+ שנים": 5,
}

// Neighborhoods is the closed list the registration forms offer.
var Neighborhoods = []string{
	"פלורנטין",
	"נווה צדק",
	"רוטשילד",
	"דיזנגוף",
	"תל אביב צפון",
	"יפו העתיקה",
	"עג׳מי",
	"שפירא",
	"הצפון הישן",
	"מונטיפיורי",
	"לב העיר",
	"שכונת התקווה",
	"רמת אביב",
	"צהלה",
	"אפקה",
}

// ServiceTypeLabel returns the display label for a service code, or the
// code itself when it is free text.
func ServiceTypeLabel(code string) string {
	if label, ok := ServiceTypes[code]; ok {
		return label
	}
	return code
}

// BusinessCategoryLabel returns the display label for a category code.
func BusinessCategoryLabel(code string) string {
	if label, ok := BusinessCategories[code]; ok {
		return label
	}
	return code
}

// StatusLabel returns the Hebrew label for a request status.
func StatusLabel(status string) string {
	switch status {
	case RequestStatusOpen:
		return "פתוח"
	case RequestStatusCompleted:
		return "הושלם"
	default:
		return status
	}
}
