package airports

// builtinAirports is the default catalog: major international airports, grouped by region.
var builtinAirports = []Airport{
	// North America
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA", Latitude: 40.6413, Longitude: -73.7781},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA", Latitude: 33.9416, Longitude: -118.4085},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "USA", Latitude: 41.9786, Longitude: -87.9048},
	{Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "USA", Latitude: 32.8968, Longitude: -97.0380},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "USA", Latitude: 33.6407, Longitude: -84.4277},
	{Code: "DEN", Name: "Denver International Airport", City: "Denver", Country: "USA", Latitude: 39.8561, Longitude: -104.6737},
	{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "USA", Latitude: 37.7749, Longitude: -122.4194},
	{Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "USA", Latitude: 25.7932, Longitude: -80.2906},
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada", Latitude: 43.6777, Longitude: -79.6248},
	{Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada", Latitude: 49.1967, Longitude: -123.1815},
	{Code: "MEX", Name: "Mexico City International Airport", City: "Mexico City", Country: "Mexico", Latitude: 19.4363, Longitude: -99.0721},

	// Europe
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "UK", Latitude: 51.4700, Longitude: -0.4543},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Latitude: 49.0097, Longitude: 2.5479},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Latitude: 50.0379, Longitude: 8.5622},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Latitude: 52.3105, Longitude: 4.7683},
	{Code: "MAD", Name: "Adolfo Suárez Madrid–Barajas Airport", City: "Madrid", Country: "Spain", Latitude: 40.4983, Longitude: -3.5676},
	{Code: "FCO", Name: "Leonardo da Vinci International Airport", City: "Rome", Country: "Italy", Latitude: 41.8045, Longitude: 12.2508},
	{Code: "BCN", Name: "Barcelona–El Prat Airport", City: "Barcelona", Country: "Spain", Latitude: 41.2974, Longitude: 2.0833},
	{Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany", Latitude: 48.3538, Longitude: 11.7861},
	{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland", Latitude: 47.4588, Longitude: 8.5559},
	{Code: "VIE", Name: "Vienna International Airport", City: "Vienna", Country: "Austria", Latitude: 48.1102, Longitude: 16.5697},
	{Code: "ARN", Name: "Stockholm Arlanda Airport", City: "Stockholm", Country: "Sweden", Latitude: 59.6498, Longitude: 17.9238},
	{Code: "OSL", Name: "Oslo Airport", City: "Oslo", Country: "Norway", Latitude: 60.1975, Longitude: 11.1004},
	{Code: "CPH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "Denmark", Latitude: 55.6180, Longitude: 12.6508},
	{Code: "HEL", Name: "Helsinki Airport", City: "Helsinki", Country: "Finland", Latitude: 60.3172, Longitude: 24.9633},

	// Asia
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Latitude: 35.7720, Longitude: 140.3929},
	{Code: "HND", Name: "Haneda Airport", City: "Tokyo", Country: "Japan", Latitude: 35.5494, Longitude: 139.7798},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea", Latitude: 37.4602, Longitude: 126.4407},
	{Code: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China", Latitude: 40.0799, Longitude: 116.6031},
	{Code: "PVG", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China", Latitude: 31.1443, Longitude: 121.8083},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "China", Latitude: 22.3080, Longitude: 113.9185},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Latitude: 1.3644, Longitude: 103.9915},
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand", Latitude: 13.6900, Longitude: 100.7501},
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India", Latitude: 28.5562, Longitude: 77.1000},
	{Code: "BOM", Name: "Chhatrapati Shivaji International Airport", City: "Mumbai", Country: "India", Latitude: 19.0896, Longitude: 72.8656},
	{Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India", Latitude: 13.1986, Longitude: 77.7066},
	{Code: "MAA", Name: "Chennai International Airport", City: "Chennai", Country: "India", Latitude: 12.9941, Longitude: 80.1709},
	{Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia", Latitude: 2.7456, Longitude: 101.7072},
	{Code: "CGK", Name: "Soekarno–Hatta International Airport", City: "Jakarta", Country: "Indonesia", Latitude: -6.1256, Longitude: 106.6558},
	{Code: "MNL", Name: "Ninoy Aquino International Airport", City: "Manila", Country: "Philippines", Latitude: 14.5086, Longitude: 121.0198},
	{Code: "HAN", Name: "Noi Bai International Airport", City: "Hanoi", Country: "Vietnam", Latitude: 21.2212, Longitude: 105.8072},
	{Code: "SGN", Name: "Tan Son Nhat International Airport", City: "Ho Chi Minh City", Country: "Vietnam", Latitude: 10.8188, Longitude: 106.6520},

	// Middle East
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE", Latitude: 25.2532, Longitude: 55.3657},
	{Code: "AUH", Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "UAE", Latitude: 24.4331, Longitude: 54.6511},
	{Code: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar", Latitude: 25.2730, Longitude: 51.6081},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Latitude: 41.2751, Longitude: 28.7519},
	{Code: "TLV", Name: "Ben Gurion Airport", City: "Tel Aviv", Country: "Israel", Latitude: 32.0114, Longitude: 34.8867},
	{Code: "RUH", Name: "King Khalid International Airport", City: "Riyadh", Country: "Saudi Arabia", Latitude: 24.9578, Longitude: 46.6989},
	{Code: "JED", Name: "King Abdulaziz International Airport", City: "Jeddah", Country: "Saudi Arabia", Latitude: 21.6805, Longitude: 39.1565},

	// Africa
	{Code: "CAI", Name: "Cairo International Airport", City: "Cairo", Country: "Egypt", Latitude: 30.1219, Longitude: 31.4056},
	{Code: "JNB", Name: "O. R. Tambo International Airport", City: "Johannesburg", Country: "South Africa", Latitude: -26.1392, Longitude: 28.2460},
	{Code: "CPT", Name: "Cape Town International Airport", City: "Cape Town", Country: "South Africa", Latitude: -33.9715, Longitude: 18.6021},
	{Code: "NBO", Name: "Jomo Kenyatta International Airport", City: "Nairobi", Country: "Kenya", Latitude: -1.3192, Longitude: 36.9278},
	{Code: "LAG", Name: "Murtala Muhammed International Airport", City: "Lagos", Country: "Nigeria", Latitude: 6.5774, Longitude: 3.3210},
	{Code: "CMN", Name: "Mohammed V International Airport", City: "Casablanca", Country: "Morocco", Latitude: 33.5731, Longitude: -7.5898},

	// Oceania
	{Code: "SYD", Name: "Sydney Airport", City: "Sydney", Country: "Australia", Latitude: -33.9399, Longitude: 151.1753},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Latitude: -37.8136, Longitude: 144.9631},
	{Code: "BNE", Name: "Brisbane Airport", City: "Brisbane", Country: "Australia", Latitude: -27.3842, Longitude: 153.1175},
	{Code: "PER", Name: "Perth Airport", City: "Perth", Country: "Australia", Latitude: -31.9404, Longitude: 115.9668},
	{Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand", Latitude: -37.0082, Longitude: 174.7850},
	{Code: "WLG", Name: "Wellington Airport", City: "Wellington", Country: "New Zealand", Latitude: -41.3272, Longitude: 174.8053},

	// South America
	{Code: "GRU", Name: "São Paulo/Guarulhos International Airport", City: "São Paulo", Country: "Brazil", Latitude: -23.4356, Longitude: -46.4731},
	{Code: "GIG", Name: "Rio de Janeiro/Galeão International Airport", City: "Rio de Janeiro", Country: "Brazil", Latitude: -22.8089, Longitude: -43.2496},
	{Code: "EZE", Name: "Ministro Pistarini International Airport", City: "Buenos Aires", Country: "Argentina", Latitude: -34.8222, Longitude: -58.5358},
	{Code: "SCL", Name: "Arturo Merino Benítez International Airport", City: "Santiago", Country: "Chile", Latitude: -33.3928, Longitude: -70.7858},
	{Code: "LIM", Name: "Jorge Chávez International Airport", City: "Lima", Country: "Peru", Latitude: -12.0219, Longitude: -77.1143},
	{Code: "BOG", Name: "El Dorado International Airport", City: "Bogotá", Country: "Colombia", Latitude: 4.7016, Longitude: -74.1469},
	{Code: "CCS", Name: "Simón Bolívar International Airport", City: "Caracas", Country: "Venezuela", Latitude: 10.6031, Longitude: -66.9910},
}

// majorCities are the cities Major returns airports for
var majorCities = []string{
	"New York", "London", "Paris", "Tokyo", "Beijing", "Shanghai",
	"Los Angeles", "Chicago", "Dubai", "Singapore", "Hong Kong",
	"Sydney", "Toronto", "Mumbai", "Delhi", "São Paulo", "Moscow",
}
