// Word sets backing the lexical signals. These are deliberately small,
// high-frequency sets: the scorer wants cheap strong signals, not coverage.

package heuristic

var commonWords = map[string]bool{
	"about": true, "angel": true, "apple": true, "baker": true, "beach": true,
	"bear": true, "best": true, "bird": true, "black": true, "blue": true,
	"book": true, "boss": true, "brain": true, "bread": true, "cake": true,
	"candy": true, "cat": true, "chef": true, "city": true, "cloud": true,
	"coffee": true, "cool": true, "crazy": true, "dance": true, "dark": true,
	"dog": true, "dream": true, "eagle": true, "earth": true, "fire": true,
	"fish": true, "flower": true, "food": true, "fox": true, "free": true,
	"fresh": true, "game": true, "gamer": true, "ghost": true, "girl": true,
	"gold": true, "good": true, "green": true, "happy": true, "heart": true,
	"hello": true, "hero": true, "home": true, "house": true, "jazz": true,
	"king": true, "life": true, "light": true, "lion": true, "love": true,
	"lucky": true, "luna": true, "magic": true, "man": true, "money": true,
	"moon": true, "music": true, "night": true, "ninja": true, "ocean": true,
	"panda": true, "party": true, "peace": true, "phoenix": true, "pink": true,
	"pizza": true, "power": true, "prince": true, "queen": true, "rain": true,
	"real": true, "red": true, "rich": true, "river": true, "rock": true,
	"rose": true, "royal": true, "shadow": true, "shark": true, "silver": true,
	"sky": true, "smart": true, "smile": true, "snow": true, "soul": true,
	"space": true, "star": true, "storm": true, "style": true, "sugar": true,
	"summer": true, "sun": true, "sweet": true, "tiger": true, "time": true,
	"true": true, "vibe": true, "water": true, "wave": true, "white": true,
	"wild": true, "wind": true, "winter": true, "wolf": true, "world": true,
	"young": true, "zen": true,
}

var firstNames = map[string]bool{
	"adam": true, "alex": true, "amy": true, "anna": true, "ben": true,
	"carlos": true, "chris": true, "daniel": true, "david": true, "diana": true,
	"emily": true, "emma": true, "eric": true, "hannah": true, "jack": true,
	"jake": true, "james": true, "jane": true, "jason": true, "jenny": true,
	"jessica": true, "john": true, "jose": true, "juan": true, "julia": true,
	"kate": true, "kevin": true, "laura": true, "lisa": true, "liz": true,
	"lucas": true, "luis": true, "maria": true, "mark": true, "mary": true,
	"matt": true, "max": true, "maya": true, "mike": true, "nick": true,
	"nina": true, "olivia": true, "paul": true, "peter": true, "rachel": true,
	"ryan": true, "sam": true, "sara": true, "sarah": true, "sofia": true,
	"sophia": true, "steve": true, "tom": true, "tony": true, "victor": true,
	"will": true, "zoe": true,
}

var lastNames = map[string]bool{
	"adams": true, "allen": true, "anderson": true, "brown": true, "chen": true,
	"clark": true, "davis": true, "garcia": true, "gonzalez": true, "hall": true,
	"harris": true, "hernandez": true, "jackson": true, "johnson": true,
	"jones": true, "kim": true, "lee": true, "lewis": true, "lopez": true,
	"martin": true, "martinez": true, "miller": true, "moore": true,
	"nguyen": true, "patel": true, "perez": true, "robinson": true,
	"rodriguez": true, "sanchez": true, "singh": true, "smith": true,
	"taylor": true, "thomas": true, "thompson": true, "walker": true,
	"wang": true, "white": true, "williams": true, "wilson": true, "young": true,
}

var brandNames = []string{
	"adidas", "airbnb", "amazon", "android", "apple", "chanel", "cocacola",
	"disney", "ebay", "facebook", "ferrari", "gillette", "google", "gucci",
	"honda", "instagram", "intel", "lego", "lexus", "linkedin", "microsoft",
	"minecraft", "netflix", "nike", "nintendo", "nvidia", "oracle", "pepsi",
	"playstation", "pokemon", "porsche", "prada", "reddit", "rolex", "samsung",
	"shopify", "snapchat", "sony", "spotify", "starbucks", "telegram", "tesla",
	"tiktok", "toyota", "twitch", "twitter", "uber", "visa", "walmart",
	"whatsapp", "xbox", "yamaha", "youtube", "zara",
}

var reservedWords = map[string]bool{
	"about": true, "abuse": true, "account": true, "admin": true, "api": true,
	"billing": true, "blog": true, "contact": true, "dev": true, "explore": true,
	"faq": true, "feedback": true, "ftp": true, "help": true, "home": true,
	"info": true, "legal": true, "login": true, "mail": true, "moderator": true,
	"news": true, "noreply": true, "official": true, "privacy": true,
	"register": true, "root": true, "search": true, "security": true,
	"settings": true, "shop": true, "signup": true, "staff": true,
	"status": true, "store": true, "support": true, "system": true,
	"terms": true, "test": true, "webmaster": true, "www": true,
}

var geoTerms = []string{
	"africa", "america", "asia", "atlanta", "austin", "berlin", "boston",
	"brazil", "canada", "chicago", "china", "dallas", "denver", "dubai",
	"europe", "france", "germany", "houston", "india", "italy", "japan",
	"korea", "london", "madrid", "mexico", "miami", "milan", "moscow",
	"mumbai", "nyc", "paris", "phoenix", "rome", "russia", "seattle",
	"seoul", "shanghai", "singapore", "spain", "sydney", "texas", "tokyo",
	"toronto", "usa", "vegas", "vienna",
}

var professionalTerms = []string{
	"agency", "agent", "artist", "broker", "business", "capital", "coach",
	"coding", "consult", "consulting", "creative", "design", "designer",
	"develop", "digital", "doctor", "engineer", "expert", "finance", "fitness",
	"group", "invest", "lawyer", "marketing", "media", "mentor", "photo",
	"photography", "pro", "realtor", "solutions", "studio", "tech", "trading",
	"ventures", "writer",
}

// affixPrefixes and affixSuffixes are common registration patterns people
// reach for when their first choice is taken, which itself signals a
// popular base handle.
var affixPrefixes = []string{"the_", "the", "real", "its", "iam", "im_", "mr", "ms", "official"}

var affixSuffixes = []string{"_official", "official", "_hq", "hq", "_tv", "tv", "_app", "app"}

// leetMap reverses the usual digit-for-letter substitutions.
var leetMap = map[rune]rune{
	'0': 'o', '1': 'i', '3': 'e', '4': 'a', '5': 's', '7': 't', '8': 'b',
}

// Keyboard rows and natural sequences used by the sequential-pattern signal.
var sequences = []string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm",
	"abcdefghijklmnopqrstuvwxyz", "0123456789",
}
