package geography

// governorates holds the shipping reference catalog. Ordering matters:
// bulk zone generation emits one zone per entry in this order.
var governorates = []Governorate{
	{
		Name: "Cairo",
		Cities: []string{
			"Nasr City", "Heliopolis", "Maadi", "Shubra", "El Marg",
			"Ain Shams", "El Matareya", "Zeitoun", "Hadayek El Kobba",
			"El Sahel", "Rod El Farag", "Downtown", "Abdeen", "Azbakeya",
			"Bulaq", "Garden City", "Sayeda Zeinab", "Old Cairo", "Manial",
			"Basatin", "Dar El Salam", "Tura", "Helwan", "15th of May City",
			"Katameya", "New Cairo", "Fifth Settlement", "El Rehab",
			"Madinaty", "El Shorouk", "Badr City", "El Obour", "Mokattam",
			"Zamalek",
		},
	},
	{
		Name: "Giza",
		Cities: []string{
			"Giza", "Dokki", "Agouza", "Mohandessin", "Imbaba",
			"Boulak El Dakrour", "Haram", "Faisal", "Omraniya", "Warraq",
			"Kit Kat", "Kerdasa", "Abu Rawash", "6th of October City",
			"Sheikh Zayed", "Hawamdeya", "Badrashin", "Saqqara", "Atfih",
			"El Ayat", "Oseem", "El Monib", "Dahshur", "El Bawiti",
		},
	},
	{
		Name: "Alexandria",
		Cities: []string{
			"Montaza", "Mandara", "Sidi Bishr", "Miami", "Asafra",
			"Mansheya", "Attarin", "Raml Station", "Sidi Gaber", "Smouha",
			"Sporting", "Cleopatra", "Stanley", "Glim", "San Stefano",
			"Louran", "Victoria", "Abu Qir", "Maamoura", "Borg El Arab",
			"Amreya", "Agami", "Bitash", "Hannoville", "Dekheila",
			"King Mariout", "Moharam Bek", "Karmouz", "Anfoushi",
		},
	},
	{
		Name: "Qalyubia",
		Cities: []string{
			"Banha", "Qalyub", "Shubra El Kheima", "El Khanka", "Khosous",
			"Toukh", "Qaha", "Kafr Shukr", "Shibin El Qanater",
			"El Qanater El Khayreya",
		},
	},
	{
		Name: "Sharqia",
		Cities: []string{
			"Zagazig", "10th of Ramadan City", "Minya El Qamh", "Belbeis",
			"Abu Hammad", "Abu Kebir", "Faqous", "Hehia", "El Husseiniya",
			"Kafr Saqr", "Awlad Saqr", "Mashtoul El Souk", "Diarb Negm",
			"El Ibrahimiya", "El Qurein", "El Salheya El Gedida",
		},
	},
	{
		Name: "Dakahlia",
		Cities: []string{
			"Mansoura", "Talkha", "Mit Ghamr", "Dekernes", "Aga",
			"Sinbillawin", "Belqas", "Sherbin", "El Matareya El Dakahlia",
			"Manzala", "Gamasa", "Nabaroh", "Temay El Amdid", "Mit Salsil",
			"Menyet El Nasr", "Bani Ubaid", "Mahalat Damana",
		},
	},
	{
		Name: "Gharbia",
		Cities: []string{
			"Tanta", "El Mahalla El Kubra", "Kafr El Zayat", "Zefta",
			"Samannoud", "Basyoun", "Qutour", "El Santa",
		},
	},
	{
		Name: "Monufia",
		Cities: []string{
			"Shibin El Kom", "Sadat City", "Menouf", "Ashmoun", "El Bagour",
			"Quesna", "Berket El Saba", "Tala", "El Shohada",
		},
	},
	{
		Name: "Beheira",
		Cities: []string{
			"Damanhour", "Kafr El Dawwar", "Rashid", "Edku",
			"Abu El Matamir", "Abu Homs", "Delengat", "Mahmoudiyah",
			"Rahmaniya", "Itay El Barud", "Hosh Issa", "Shubrakhit",
			"Kom Hamada", "Badr", "Wadi El Natrun", "New Nubariya",
		},
	},
	{
		Name: "Kafr El Sheikh",
		Cities: []string{
			"Kafr El Sheikh", "Desouk", "Fuwa", "Metoubes", "Baltim",
			"Hamoul", "Bella", "Riyadh", "Sidi Salem", "Qellin",
			"Sidi Ghazi",
		},
	},
	{
		Name: "Damietta",
		Cities: []string{
			"Damietta", "New Damietta", "Ras El Bar", "Faraskour",
			"Zarqa", "Kafr Saad", "Kafr El Batikh",
		},
	},
	{
		Name: "Port Said",
		Cities: []string{
			"Port Said", "Port Fouad", "El Arab", "Zohour", "Sharq",
			"Manakh", "Dawahy",
		},
	},
	{
		Name: "Ismailia",
		Cities: []string{
			"Ismailia", "Fayed", "Qantara Sharq", "Qantara Gharb",
			"Tell El Kebir", "Abu Suwir", "Kasassin",
		},
	},
	{
		Name: "Suez",
		Cities: []string{
			"Suez", "Arbaeen", "Ganayen", "Attaka", "Faisal Suez",
		},
	},
	{
		Name: "North Sinai",
		Cities: []string{
			"Arish", "Sheikh Zuweid", "Rafah", "Bir El Abd", "Hasana",
			"Nakhl",
		},
	},
	{
		Name: "South Sinai",
		Cities: []string{
			"El Tor", "Sharm El Sheikh", "Dahab", "Nuweiba", "Taba",
			"Saint Catherine", "Abu Rudeis", "Ras Sedr",
		},
	},
	{
		Name: "Red Sea",
		Cities: []string{
			"Hurghada", "Ras Ghareb", "Safaga", "Quseer", "Marsa Alam",
			"Shalateen", "Halaib",
		},
	},
	{
		Name: "Matrouh",
		Cities: []string{
			"Marsa Matrouh", "El Hamam", "Alamein", "Dabaa",
			"Sidi Barrani", "Salloum", "Siwa",
		},
	},
	{
		Name: "Fayoum",
		Cities: []string{
			"Fayoum", "Tamiya", "Snuris", "Etsa", "Ibsheway",
			"Youssef El Seddik", "New Fayoum",
		},
	},
	{
		Name: "Beni Suef",
		Cities: []string{
			"Beni Suef", "New Beni Suef", "Wasta", "Nasser", "Ehnasia",
			"Beba", "Fashn", "Somosta",
		},
	},
	{
		Name: "Minya",
		Cities: []string{
			"Minya", "New Minya", "El Idwa", "Maghagha", "Bani Mazar",
			"Matay", "Samalut", "Mallawi", "Deir Mawas", "Abu Qurqas",
		},
	},
	{
		Name: "Assiut",
		Cities: []string{
			"Assiut", "New Assiut", "Dayrout", "Manfalut", "Qusiya",
			"Abnub", "Abu Tig", "El Ghanayem", "Sahel Selim", "El Badari",
			"Sidfa", "El Fath",
		},
	},
	{
		Name: "Sohag",
		Cities: []string{
			"Sohag", "Akhmim", "El Balyana", "El Maragha", "El Monshah",
			"Dar El Salam Sohag", "Girga", "Juhayna", "Saqultah", "Tima",
			"Tahta", "El Usayrat",
		},
	},
	{
		Name: "Qena",
		Cities: []string{
			"Qena", "New Qena", "Abu Tesht", "Nag Hammadi", "Deshna",
			"Waqf", "Qift", "Naqada", "Farshut", "Quos",
		},
	},
	{
		Name: "Luxor",
		Cities: []string{
			"Luxor", "New Luxor", "Esna", "Armant", "El Tod",
			"El Bayadieh", "El Qurna",
		},
	},
	{
		Name: "Aswan",
		Cities: []string{
			"Aswan", "New Aswan", "Daraw", "Kom Ombo", "Nasr El Nuba",
			"Kalabsha", "Edfu", "Abu Simbel",
		},
	},
	{
		Name: "New Valley",
		Cities: []string{
			"Kharga", "Dakhla", "Farafra", "Paris", "Balat",
		},
	},
}
