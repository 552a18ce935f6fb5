package majors

// Static majors dataset, extracted from undergrad.osu.edu February 2026.
var staticMajors = []string{
	"Accounting", "Actuarial Science", "Aerospace Engineering",
	"African American and African Studies", "Agribusiness",
	"Agribusiness and Applied Economics", "Agricultural Communication",
	"Agricultural Systems Management", "Agriscience Education", "Agronomy",
	"Ancient History and Classics", "Animal Sciences",
	"Anthropological Sciences", "Anthropology", "Arabic", "Architecture",
	"Art", "Art Education", "Arts Management",
	"Astronomy and Astrophysics", "Atmospheric Sciences", "Aviation",
	"Aviation Management", "Biochemistry", "Biology",
	"Biomedical Engineering", "Biomedical Science",
	"Business Administration", "Business Management",
	"Chemical Engineering", "Chemistry", "Child and Youth Studies",
	"Chinese", "City and Regional Planning", "Civil Engineering",
	"Classics", "Communication", "Community Leadership",
	"Comparative Studies", "Computer and Information Science",
	"Computer Science and Engineering", "Construction Systems Management",
	"Consumer and Family Financial Services",
	"Criminology and Criminal Justice Studies", "Dance", "Data Analytics",
	"Dental Hygiene", "Earth Sciences", "Economics",
	"Economics - Business",
	"Education - Integrated Language Arts/English Education",
	"Education - Middle Childhood Education",
	"Education - Primary Education",
	"Education - Science and Mathematics Education",
	"Education - Special Education",
	"Education - Teaching English to Speakers of Other Languages",
	"Education - Technical Education and Training",
	"Education - World Language Education",
	"Electrical and Computer Engineering", "Engineering Physics",
	"Engineering Technology", "English", "Entomology",
	"Environment and Natural Resources",
	"Environment, Economy, Development and Sustainability",
	"Environmental Engineering", "Environmental Policy and Decision Making",
	"Environmental Science", "Evolution and Ecology",
	"Exercise Science Education", "Experiential Media Design",
	"Fashion and Retail Studies", "Film Studies", "Finance",
	"Food Business Management", "Food Science and Technology",
	"Food, Agricultural and Biological Engineering",
	"Forensic Anthropology", "Forestry, Fisheries and Wildlife",
	"French", "French and Francophone Studies",
	"Geographic Information Science", "Geography", "German",
	"Health and Rehabilitation Sciences",
	"Health Information Management and Systems",
	"Health Promotion, Nutrition and Exercise Science",
	"Health Sciences", "Hebrew and Jewish Studies", "History",
	"History of Art", "Horticulture and Crop Science",
	"Hospitality Management", "Human Development and Family Science",
	"Human Nutrition", "Human Resources",
	"Industrial and Systems Engineering", "Industrial Design",
	"Information Systems", "Interior Design", "International Business",
	"International Studies", "Islamic Studies", "Italian",
	"Italian Studies", "Japanese", "Journalism", "Korean",
	"Landscape Architecture", "Leadership", "Linguistics",
	"Logistics Management", "Marketing",
	"Materials Science and Engineering", "Mathematics",
	"Mechanical Engineering", "Medical Anthropology",
	"Medical Laboratory Science", "Microbiology", "Modern Greek",
	"Molecular Genetics", "Moving-Image Production", "Music",
	"Music - Composition", "Music - Education", "Music - Jazz Studies",
	"Music - Performance (orchestral instruments)",
	"Music - Performance (piano)", "Music - Performance (voice)",
	"Natural Resource Management", "Neuroscience", "Nursing",
	"Occupational Therapy", "Operations Management",
	"Pharmaceutical Sciences", "Philosophy",
	"Philosophy, Politics and Economics", "Physical Therapy", "Physics",
	"Plant Pathology", "Political Science", "Portuguese",
	"Pre-Dentistry", "Pre-Law", "Pre-Medicine", "Pre-Optometry",
	"Pre-Pharmacy", "Pre-Veterinary Medicine",
	"Professional Golf Management", "Psychology", "Public Health",
	"Public Management, Leadership and Policy", "Public Policy Analysis",
	"Radiologic Sciences and Therapy", "Real Estate and Urban Analysis",
	"Religious Studies", "Respiratory Therapy", "Romance Studies",
	"Russian", "Social Sciences Air Transportation", "Social Work",
	"Sociology", "Spanish", "Speech and Hearing Science",
	"Sport Industry", "Statistics", "Theatre", "Vision Science",
	"Visual Communication Design", "Welding Engineering",
	"Women's, Gender and Sexuality Studies", "World Literatures",
	"World Politics", "Zoology",
}
