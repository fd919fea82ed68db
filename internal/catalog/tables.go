package catalog

func pair(from, to string) CityPair { return CityPair{From: from, To: to} }

func knownDistances() []Distance {
	return []Distance{
		{pair("hyderabad", "varanasi"), 1339},
		{pair("hyderabad", "goa"), 635},
		{pair("hyderabad", "chhattisgarh"), 847},
		{pair("hyderabad", "delhi"), 1580},
		{pair("hyderabad", "bangalore"), 570},
		{pair("hyderabad", "chennai"), 626},
		{pair("hyderabad", "mumbai"), 705},
		{pair("hyderabad", "kerala"), 1200},
		{pair("mumbai", "goa"), 590},
		{pair("mumbai", "delhi"), 1400},
		{pair("bangalore", "chennai"), 350},
		{pair("delhi", "jaipur"), 270},
		{pair("rajiv gandhi international airport", "chhattisgarh"), 847},
	}
}

func intermediateTowns() []Towns {
	t := func(from, to string, towns ...string) Towns { return Towns{Pair: pair(from, to), Towns: towns} }
	return []Towns{
		t("hyderabad", "varanasi", "nagpur", "jabalpur", "prayagraj"),
		t("hyderabad", "delhi", "nagpur", "jhansi", "gwalior", "agra"),
		t("hyderabad", "mumbai", "pune", "solapur", "gulbarga"),
		t("hyderabad", "chennai", "nellore", "tirupati", "gudur"),
		t("hyderabad", "bangalore", "kurnool", "anantapur", "hindupur"),
		t("hyderabad", "goa", "belgaum", "hubli", "dharwad"),
		t("hyderabad", "kolkata", "vijayawada", "rajahmundry", "visakhapatnam", "bhubaneswar"),
		t("hyderabad", "chhattisgarh", "nagpur", "raipur", "bilaspur"),
		t("hyderabad", "bhopal", "nagpur", "itarsi", "hoshangabad"),
		t("hyderabad", "ahmedabad", "aurangabad", "indore", "vadodara"),
		t("hyderabad", "jaipur", "nagpur", "bhopal", "kota"),
		t("hyderabad", "lucknow", "nagpur", "jabalpur", "kanpur"),
		t("hyderabad", "amritsar", "nagpur", "delhi", "ambala"),
		t("hyderabad", "kochi", "bangalore", "mysore", "coimbatore"),
		t("hyderabad", "pondicherry", "nellore", "chennai", "mahabalipuram"),
		t("hyderabad", "tirupati", "nellore", "gudur"),
		t("hyderabad", "vijayawada", "suryapet", "khammam"),
		t("hyderabad", "visakhapatnam", "vijayawada", "rajahmundry"),

		t("delhi", "mumbai", "jaipur", "ahmedabad", "vadodara"),
		t("delhi", "chennai", "agra", "nagpur", "hyderabad"),
		t("delhi", "bangalore", "jaipur", "ahmedabad", "pune"),
		t("delhi", "kolkata", "kanpur", "varanasi", "dhanbad"),
		t("delhi", "jaipur", "alwar", "dausa"),
		t("delhi", "agra", "mathura", "vrindavan"),
		t("delhi", "lucknow", "aligarh", "kanpur"),
		t("delhi", "amritsar", "ambala", "ludhiana"),
		t("delhi", "shimla", "chandigarh", "solan"),
		t("delhi", "dehradun", "meerut", "muzaffarnagar", "haridwar"),
		t("delhi", "varanasi", "agra", "lucknow", "prayagraj"),

		t("mumbai", "bangalore", "pune", "kolhapur", "belgaum"),
		t("mumbai", "chennai", "pune", "hyderabad", "nellore"),
		t("mumbai", "kolkata", "nagpur", "raipur", "ranchi"),
		t("mumbai", "goa", "pune", "kolhapur", "sawantwadi"),
		t("mumbai", "ahmedabad", "surat", "vadodara"),
		t("mumbai", "pune", "lonavala", "khandala"),
		t("mumbai", "jaipur", "ahmedabad", "udaipur", "ajmer"),
		t("mumbai", "indore", "nashik", "dhule", "khandwa"),

		t("bangalore", "chennai", "vellore", "kanchipuram"),
		t("bangalore", "kochi", "mysore", "coimbatore", "palakkad"),
		t("bangalore", "hyderabad", "anantapur", "kurnool", "mahabubnagar"),
		t("bangalore", "goa", "hubli", "dharwad", "karwar"),
		t("bangalore", "mumbai", "hubli", "belgaum", "kolhapur", "pune"),
		t("bangalore", "mysore", "ramanagara", "mandya"),
		t("bangalore", "ooty", "mysore", "bandipur"),
		t("bangalore", "mangalore", "hassan", "sakleshpur"),

		t("chennai", "bangalore", "kanchipuram", "vellore", "krishnagiri"),
		t("chennai", "hyderabad", "nellore", "ongole", "guntur"),
		t("chennai", "kochi", "pondicherry", "thanjavur", "madurai"),
		t("chennai", "pondicherry", "mahabalipuram", "chengalpattu"),
		t("chennai", "madurai", "villupuram", "trichy"),
		t("chennai", "tirupati", "sullurpeta", "srikalahasti"),

		t("kolkata", "delhi", "dhanbad", "varanasi", "prayagraj"),
		t("kolkata", "mumbai", "jamshedpur", "raipur", "nagpur"),
		t("kolkata", "chennai", "bhubaneswar", "visakhapatnam", "vijayawada"),
		t("kolkata", "siliguri", "malda", "raiganj"),
		t("kolkata", "digha", "kharagpur", "contai"),
		t("kolkata", "puri", "kharagpur", "balasore", "bhubaneswar"),

		t("chhattisgarh", "delhi", "raipur", "nagpur", "jhansi"),
		t("chhattisgarh", "mumbai", "raipur", "nagpur", "aurangabad"),
		t("chhattisgarh", "kolkata", "raipur", "ranchi", "dhanbad"),
		t("chhattisgarh", "hyderabad", "raipur", "nagpur", "adilabad"),
		t("chhattisgarh", "bhopal", "bilaspur", "jabalpur"),
		t("chhattisgarh", "nagpur", "raipur", "durg", "rajnandgaon"),
		t("chhattisgarh", "ranchi", "ambikapur", "gumla"),
		t("chhattisgarh", "varanasi", "ambikapur", "garhwa", "sasaram"),

		t("jaipur", "udaipur", "ajmer", "bhilwara", "chittorgarh"),
		t("lucknow", "varanasi", "rae bareli", "pratapgarh", "jaunpur"),
		t("ahmedabad", "udaipur", "himmatnagar", "dungarpur"),
		t("pune", "goa", "satara", "kolhapur", "belgaum"),
		t("indore", "bhopal", "dewas", "sehore"),
		t("nagpur", "jabalpur", "seoni", "chhindwara"),
		t("agra", "jaipur", "bharatpur", "dausa"),
		t("varanasi", "patna", "ghazipur", "buxar", "arrah"),
		t("dehradun", "rishikesh", "haridwar"),
		t("amritsar", "dharamshala", "pathankot", "kangra"),
		t("shimla", "manali", "mandi", "kullu"),
		t("jodhpur", "jaisalmer", "pokhran", "phalodi"),
		t("kochi", "munnar", "muvattupuzha", "kothamangalam", "adimali"),
		t("thiruvananthapuram", "kanyakumari", "neyyattinkara", "nagercoil"),
		t("madurai", "rameshwaram", "paramakudi", "ramanathapuram"),
	}
}

func cityAliases() map[string]string {
	return map[string]string{
		"bengaluru": "bangalore",
		"bombay":    "mumbai",
		"calcutta":  "kolkata",
		"madras":    "chennai",
		"new delhi": "delhi",
		"pink city": "jaipur",
	}
}

func cityAttractions() map[string][]Place {
	return map[string][]Place{
		"delhi": {
			{"Red Fort", "UNESCO World Heritage Site and historic fort complex built by Mughal Emperor Shah Jahan in 1639.", "4.6"},
			{"Qutub Minar", "UNESCO World Heritage Site featuring a 73-meter tall minaret and surrounding monuments.", "4.7"},
			{"Humayun's Tomb", "UNESCO World Heritage Site and architectural marvel that inspired the Taj Mahal.", "4.8"},
			{"India Gate", "War memorial dedicated to soldiers who died in World War I.", "4.5"},
			{"Chandni Chowk", "One of the oldest and busiest markets in Old Delhi.", "4.3"},
		},
		"mumbai": {
			{"Gateway of India", "Iconic monument built during the British Raj, overlooking the Arabian Sea.", "4.6"},
			{"Marine Drive", "C-shaped boulevard along the coastline, also known as the Queen's Necklace.", "4.7"},
			{"Elephanta Caves", "UNESCO World Heritage Site featuring ancient rock-cut temples.", "4.5"},
			{"Chhatrapati Shivaji Terminus", "Historic railway station and UNESCO World Heritage Site with Victorian Gothic architecture.", "4.6"},
			{"Juhu Beach", "Popular beach destination with food stalls and entertainment options.", "4.2"},
		},
		"bangalore": {
			{"Lalbagh Botanical Garden", "Historic botanical garden with diverse plant species and a glass house.", "4.5"},
			{"Bangalore Palace", "Royal residence featuring Tudor-style architecture and beautiful gardens.", "4.3"},
			{"Cubbon Park", "Landmark 300-acre park in central Bangalore with lush greenery.", "4.6"},
			{"ISKCON Temple Bangalore", "Modern Hindu temple complex dedicated to Lord Krishna.", "4.7"},
			{"Wonderla Amusement Park", "Popular theme park with water rides and amusement attractions.", "4.4"},
		},
		"hyderabad": {
			{"Charminar", "Iconic monument and mosque built in 1591, symbol of Hyderabad.", "4.5"},
			{"Golconda Fort", "Ancient fortress known for its acoustic design and architectural excellence.", "4.6"},
			{"Ramoji Film City", "World's largest integrated film studio complex and popular tourist attraction.", "4.4"},
			{"Hussain Sagar Lake", "Heart-shaped lake with a large monolithic statue of Buddha in the center.", "4.3"},
			{"Salar Jung Museum", "One of the largest museums in the world, housing artifacts from various civilizations.", "4.7"},
		},
		"goa": {
			{"Calangute Beach", "The largest beach in North Goa, known for its vibrant atmosphere and water sports.", "4.5"},
			{"Basilica of Bom Jesus", "UNESCO World Heritage Site housing the mortal remains of St. Francis Xavier.", "4.7"},
			{"Fort Aguada", "17th-century Portuguese fort offering panoramic views of the Arabian Sea.", "4.6"},
			{"Dudhsagar Falls", "One of India's tallest waterfalls, located in the Bhagwan Mahavir Wildlife Sanctuary.", "4.8"},
			{"Anjuna Flea Market", "Popular Wednesday market selling handicrafts, clothes, and souvenirs.", "4.3"},
		},
		"jaipur": {
			{"Amber Fort", "UNESCO World Heritage Site featuring stunning architecture and intricate carvings.", "4.7"},
			{"Hawa Mahal", "Palace of Winds with a unique honeycomb facade with 953 small windows.", "4.6"},
			{"City Palace", "Royal residence with beautiful courtyards and gardens.", "4.6"},
			{"Jantar Mantar", "UNESCO World Heritage Site with the world's largest stone sundial.", "4.5"},
			{"Jal Mahal", "Water Palace located in the middle of Man Sagar Lake.", "4.4"},
		},
		"agra": {
			{"Taj Mahal", "UNESCO World Heritage Site and one of the Seven Wonders of the World.", "4.9"},
			{"Agra Fort", "UNESCO World Heritage Site and historical fort that served as the main residence of the Mughal emperors.", "4.7"},
			{"Fatehpur Sikri", "UNESCO World Heritage Site and former capital of the Mughal Empire.", "4.6"},
			{"Mehtab Bagh", "Charbagh complex offering spectacular views of the Taj Mahal from across the Yamuna River.", "4.5"},
			{"Itimad-ud-Daulah", "Often called the 'Baby Taj', this tomb features intricate marble work.", "4.6"},
		},
	}
}

func cityHotels() map[string][]Hotel {
	return map[string][]Hotel{
		"goa": {
			{"Taj Resort & Convention Centre, Goa", "Dona Paula, Goa", "1700", "4.7", []string{"Swimming Pool", "Spa", "Free Wi-Fi", "Restaurant"}},
			{"Cidade de Goa", "Vainguinim Beach, Goa", "1550", "4.5", []string{"Beachfront", "Breakfast", "Pool", "Fitness Center"}},
			{"Caravela Beach Resort", "Varca Beach, Goa", "1450", "4.4", []string{"Private Beach", "Multiple Restaurants", "Spa", "Wi-Fi"}},
		},
		"mumbai": {
			{"The Taj Mahal Palace", "Apollo Bunder, Mumbai", "1650", "4.8", []string{"Sea View", "Spa", "Gourmet Dining", "Pool"}},
			{"ITC Maratha Mumbai", "Andheri East, Mumbai", "1500", "4.6", []string{"Airport Shuttle", "Breakfast", "Spa", "Free Wi-Fi"}},
			{"Trident Nariman Point", "Nariman Point, Mumbai", "1580", "4.7", []string{"Sea View", "Fine Dining", "Business Center", "Spa"}},
		},
		"delhi": {
			{"The Oberoi, New Delhi", "Dr. Zakir Hussain Marg, Delhi", "1600", "4.8", []string{"Luxury Spa", "Outdoor Pool", "Fine Dining", "Wi-Fi"}},
			{"Taj Palace, New Delhi", "Diplomatic Enclave, Delhi", "1550", "4.7", []string{"Swimming Pool", "Multiple Restaurants", "Fitness Center", "Spa"}},
			{"The Leela Palace New Delhi", "Chanakyapuri, Delhi", "1650", "4.9", []string{"Rooftop Pool", "Luxury Spa", "Fine Dining", "Airport Transfer"}},
		},
		"bangalore": {
			{"ITC Gardenia, Bengaluru", "Residency Road, Bengaluru", "1550", "4.7", []string{"Luxury Spa", "Fine Dining", "Outdoor Pool", "Wi-Fi"}},
			{"The Leela Palace Bengaluru", "Old Airport Road, Bengaluru", "1600", "4.8", []string{"Garden View", "Multiple Restaurants", "Spa", "Fitness Center"}},
			{"Taj West End, Bengaluru", "Race Course Road, Bengaluru", "1480", "4.6", []string{"Heritage Property", "Outdoor Pool", "Spa", "Wi-Fi"}},
		},
		"hyderabad": {
			{"Taj Falaknuma Palace", "Engine Bowli, Hyderabad", "1650", "4.9", []string{"Heritage Palace", "Spa", "Fine Dining", "City View"}},
			{"ITC Kohenur, Hyderabad", "HITEC City, Hyderabad", "1550", "4.7", []string{"Lake View", "Spa", "Multiple Restaurants", "Fitness Center"}},
			{"Novotel Hyderabad Convention Centre", "HITEC City, Hyderabad", "1450", "4.5", []string{"Business Center", "Outdoor Pool", "Wi-Fi", "Restaurant"}},
		},
	}
}

func routePlaces() map[string][]Place {
	deccan := []Place{
		{"Hampi", "UNESCO World Heritage Site with stunning ruins of the Vijayanagara Empire, featuring ancient temples, palaces, and monuments.", ""},
		{"Lepakshi Temple", "Famous for its architectural beauty with hanging pillar, intricate carvings and largest monolithic Nandi Bull statue in India.", ""},
		{"Anantapur Fort", "Historic fort built by the Vijayanagara kings offering a glimpse into medieval South Indian architecture and history.", ""},
	}
	return map[string][]Place{
		"hyderabad-bangalore": deccan,
		"hyd-bangalore":       deccan,
		"hyd-bengaluru":       deccan,
		"hyderabad-bengaluru": deccan,
		"mumbai-goa": {
			{"Ratnagiri Beaches", "Pristine golden sand beaches with clear blue waters, perfect for a relaxing stopover between Mumbai and Goa.", ""},
			{"Ganpatipule Temple", "Ancient temple dedicated to Lord Ganesh, located on a beautiful beach along the Konkan coast.", ""},
			{"Sindhudurg Fort", "Massive coastal fort built by Chhatrapati Shivaji Maharaj, offering panoramic views of the Arabian Sea.", ""},
		},
		"delhi-jaipur": {
			{"Neemrana Fort", "15th-century heritage fort converted into a luxury hotel, famous for its architecture and zip-lining activities.", ""},
			{"Sariska Tiger Reserve", "Wildlife sanctuary famous for tigers, leopards and diverse bird species, perfect for a wildlife safari en route.", ""},
			{"Alwar Palace", "Magnificent royal palace with impressive architecture that showcases the rich cultural heritage of Rajasthan.", ""},
		},
	}
}

func hotelAmenitySets() [][]string {
	return [][]string{
		{"Wi-Fi", "Pool", "Breakfast", "Fitness Center"},
		{"Room Service", "Restaurant", "Free Parking", "AC"},
		{"Spa", "Bar", "Concierge", "Room Service"},
		{"Business Center", "Airport Shuttle", "Laundry", "Wi-Fi"},
		{"Restaurant", "Pool", "Gym", "Conference Room"},
	}
}

func attractionTypes() []AttractionType {
	return []AttractionType{
		{"Historic Fort", "Ancient fort with impressive architecture and historical significance."},
		{"Temple", "Beautiful temple showcasing traditional architecture and spiritual importance."},
		{"Museum", "Fascinating museum featuring local history and cultural artifacts."},
		{"Park", "Scenic park with lush greenery and recreational facilities."},
		{"Lake", "Picturesque lake offering boating and stunning views."},
		{"Market", "Vibrant local market selling traditional crafts and souvenirs."},
		{"Beach", "Beautiful beach with golden sands and water activities."},
		{"Waterfall", "Breathtaking waterfall surrounded by natural beauty."},
		{"Gardens", "Well-maintained gardens featuring diverse plant species."},
		{"Palace", "Majestic palace showcasing royal heritage and architecture."},
	}
}

func genericTips() []string {
	return []string{
		"Carry identification and necessary travel documents.",
		"Keep a digital and physical copy of your important documents.",
		"Stay hydrated and carry necessary medications.",
		"Research local customs and traditions before your visit.",
	}
}

func modeTips() map[string][]string {
	return map[string][]string{
		"car": {
			"Ensure your vehicle is serviced before a long journey.",
			"Keep emergency contacts and roadside assistance numbers handy.",
			"Take regular breaks to avoid fatigue while driving.",
			"Download offline maps for areas with poor connectivity.",
		},
		"flight": {
			"Arrive at the airport at least 2 hours before domestic flights.",
			"Check airline baggage restrictions before packing.",
			"Carry a neck pillow and eye mask for comfort during the flight.",
			"Keep essential items in your carry-on luggage.",
		},
	}
}

func destinationTips() map[string][]string {
	return map[string][]string{
		"goa": {
			"Apply sunscreen regularly when visiting beaches.",
			"Respect local beach safety guidelines and flags.",
			"Try local Goan cuisine like Vindaloo and Xacuti.",
			"Rent a two-wheeler for convenient local transportation.",
		},
		"mumbai": {
			"Use local trains for efficient transportation across the city.",
			"Try Mumbai's famous street food like Vada Pav and Pav Bhaji.",
			"Carry an umbrella during monsoon season (June-September).",
			"Visit Marine Drive in the evening for a beautiful view.",
		},
		"delhi": {
			"Use the Metro for convenient transportation across the city.",
			"Visit historical monuments early in the morning to avoid crowds.",
			"Try local Delhi street food in Chandni Chowk.",
			"Dress modestly when visiting religious sites.",
		},
		"bangalore": {
			"Be prepared for traffic congestion during peak hours.",
			"The weather is pleasant year-round, but carry a light jacket for evenings.",
			"Try local South Indian cuisine like Dosa and Filter Coffee.",
			"Visit the many microbreweries for craft beer experiences.",
		},
		"hyderabad": {
			"Try the famous Hyderabadi Biryani and Haleem.",
			"Visit the Old City for authentic local experiences.",
			"Carry a hat and sunscreen during summer months.",
			"Shop for pearls and bangles at Laad Bazaar.",
		},
	}
}

func activities() []string {
	return []string{
		"taking memorable photographs", "learning about the local history",
		"interacting with locals", "shopping for souvenirs",
		"sampling local snacks", "enjoying the scenic views",
		"participating in cultural activities", "taking a guided tour",
		"relaxing in the peaceful atmosphere", "trying adventure activities",
	}
}

func eveningPlans() []string {
	return []string{
		"take a stroll along the beach", "attend a cultural performance",
		"visit a local market", "enjoy live music at a café",
		"relax with drinks at a rooftop bar", "join a night tour",
		"watch the sunset from a viewpoint", "explore the illuminated landmarks",
	}
}
