package annotate

// categoryEntry pairs a category label with its matching keywords in
// both scripts. The list is ordered: when a name matches several
// categories the earliest entry wins, so ordering is a tie-break rule,
// not cosmetic.
type categoryEntry struct {
	Label    string
	Keywords []string
}

var categoryTable = []categoryEntry{
	{"rice", []string{"అన్నం", "రైస్", "పులిహోర", "బిర్యానీ", "rice", "biryani", "pulihora"}},
	{"curry", []string{"కర్రీ", "కూర", "కుర", "curry", "gravy", "మసాలా"}},
	{"snacks", []string{"స్నాక్స్", "టిఫిన్", "దోసె", "ఇడ్లీ", "వడ", "snacks", "tiffin", "dosa", "idli"}},
	{"sweets", []string{"మిఠాయి", "లడ్డు", "హల్వా", "పాయసం", "sweet", "laddu", "halwa", "payasam"}},
	{"dal", []string{"పప్పు", "సాంబార్", "రసం", "dal", "sambar", "rasam"}},
	{"vegetables", []string{"కూరగాయలు", "కర్రీ", "పల్య", "vegetables", "sabzi", "curry"}},
	{"bread", []string{"రొట్టె", "చపాతీ", "నాన్", "bread", "chapati", "naan"}},
	{"chicken", []string{"కోడి", "చికెన్", "chicken", "poultry"}},
	{"mutton", []string{"మటన్", "గొర్రె", "mutton", "goat", "lamb"}},
	{"fish", []string{"చేప", "ఫిష్", "fish", "seafood"}},
	{"beverages", []string{"పానీయాలు", "టీ", "కాఫీ", "జూస్", "drinks", "tea", "coffee", "juice"}},
}

// CategoryMiscellaneous is returned when no category keyword matches.
const CategoryMiscellaneous = "miscellaneous"

// complexTechniques are cooking techniques that raise the difficulty
// score by one each when present in the steps text.
var complexTechniques = []string{
	"వేయించు", // frying
	"కాల్చు",  // roasting
	"మసాలా",   // masala making
	"tempering",
	"fry",
	"roast",
	"grind",
}

var (
	hourKeywords   = []string{"గంట", "గంటలు", "hour", "hours"}
	minuteKeywords = []string{"నిమిషాలు", "minutes", "మిన్", "min"}
)
