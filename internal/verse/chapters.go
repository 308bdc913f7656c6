package verse

// ChapterCount is the number of chapters the listing advertises.
const ChapterCount = 18

// Title is the localized title pair shown on a chapter card.
type Title struct {
	English  string `json:"title_en"`
	Sanskrit string `json:"title_sa"`
}

var titlesEnglish = [ChapterCount]string{
	"The Distress of Arjuna", "The Path of Knowledge", "The Path of Selfless Action",
	"Wisdom in Action", "The Path of Renunciation", "The Path of Meditation",
	"Knowledge and Realization", "The Imperishable Eternal", "The Royal Secret",
	"The Divine Splendor", "The Vision of the Cosmic Form", "The Path of Devotion",
	"Nature, the Enjoyer, and Consciousness", "The Three Modes of Material Nature",
	"The Supreme Divine Personality", "The Divine and Demoniac Natures",
	"The Three Divisions of Faith", "Liberation and Renunciation",
}

var titlesSanskrit = [ChapterCount]string{
	"अर्जुनविषादयोग", "सांख्ययोग", "कर्मयोग", "ज्ञानकर्मसंन्यासयोग",
	"कर्मसंन्यासयोग", "ध्यानयोग", "ज्ञानविज्ञानयोग", "अक्षरब्रह्मयोग",
	"राजविद्याराजगुह्ययोग", "विभूतियोग", "विश्वरूपदर्शनयोग", "भक्तियोग",
	"क्षेत्रक्षेत्रज्ञविभागयोग", "गुणत्रयविभागयोग", "पुरुषोत्तमयोग",
	"दैवासुरसंपद्विभागयोग", "श्रद्धात्रयविभागयोग", "मोक्षसंन्यासयोग",
}

// ValidChapter reports whether n is one of the advertised chapters.
func ValidChapter(n int) bool {
	return n >= 1 && n <= ChapterCount
}

// ChapterTitle returns the title pair for chapter n (1-based).
func ChapterTitle(n int) (Title, bool) {
	if !ValidChapter(n) {
		return Title{}, false
	}
	return Title{English: titlesEnglish[n-1], Sanskrit: titlesSanskrit[n-1]}, true
}
