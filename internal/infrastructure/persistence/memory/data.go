package memory

import (
	"time"

	"github.com/resepmakanan/v1/internal/domain/recipe"
)

// Static mock content. Thumbnails are keyword references resolved to
// display URLs by the image resolver.

func seedCategories() []recipe.Category {
	return []recipe.Category{
		{ID: "sarapan", Name: "Sarapan", Icon: "🍳"},
		{ID: "makan-utama", Name: "Makan Utama", Icon: "🍛"},
		{ID: "dessert", Name: "Dessert", Icon: "🍰"},
		{ID: "minuman", Name: "Minuman", Icon: "🥤"},
		{ID: "cemilan", Name: "Cemilan", Icon: "🍟"},
		{ID: "sehat", Name: "Menu Sehat", Icon: "🥗"},
	}
}

func seedRecipes() []*recipe.Recipe {
	return []*recipe.Recipe{
		{
			ID:          "rendang-daging-sapi",
			Title:       "Rendang Daging Sapi",
			Description: "Rendang klasik Minang dengan santan kental dan rempah yang dimasak perlahan hingga empuk dan berwarna gelap.",
			Thumbnail:   "rendang beef stew",
			Rating:      4.9,
			Reviews:     1284,
			PrepTime:    30,
			CookTime:    180,
			Servings:    6,
			Difficulty:  recipe.DifficultyAhli,
			Cuisine:     recipe.CuisineIndonesia,
			Category:    "makan-utama",
			Tags:        []string{"rendang", "sapi", "pedas", "tradisional"},
			Ingredients: []recipe.Ingredient{
				{Item: "Daging sapi", Amount: 1, Unit: "kg", PrepTimeSeconds: 600},
				{Item: "Santan kental", Amount: 1000, Unit: "ml"},
				{Item: "Bawang merah", Amount: 12, Unit: "siung", PrepTimeSeconds: 300},
				{Item: "Cabai merah keriting", Amount: 250, Unit: "g", PrepTimeSeconds: 240},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Haluskan bawang merah, bawang putih, dan cabai menjadi bumbu dasar."},
				{Step: 2, Text: "Tumis bumbu halus hingga harum dan matang.", TimerSeconds: 300},
				{Step: 3, Text: "Masukkan daging dan santan, masak dengan api kecil sambil sesekali diaduk.", TimerSeconds: 5400},
				{Step: 4, Text: "Lanjutkan memasak hingga santan menyusut dan rendang berwarna cokelat gelap.", TimerSeconds: 3600},
			},
			Nutrition: recipe.Nutrition{Calories: 620, Protein: 42, Carbs: 12, Fat: 45},
			VideoURL:  "https://videos.resepmakanan.example/rendang-daging-sapi",
			IsPopular: true,
			CreatedAt: time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "nasi-goreng-kampung",
			Title:       "Nasi Goreng Kampung",
			Description: "Nasi goreng sederhana dengan telur, kecap manis, dan taburan bawang goreng seperti buatan warung langganan.",
			Thumbnail:   "nasi goreng fried rice",
			Rating:      4.7,
			Reviews:     2045,
			PrepTime:    10,
			CookTime:    15,
			Servings:    2,
			Difficulty:  recipe.DifficultyPemula,
			Cuisine:     recipe.CuisineIndonesia,
			Category:    "makan-utama",
			Tags:        []string{"nasi goreng", "cepat", "telur"},
			Ingredients: []recipe.Ingredient{
				{Item: "Nasi putih", Amount: 400, Unit: "g"},
				{Item: "Telur ayam", Amount: 2, Unit: "butir"},
				{Item: "Bawang putih", Amount: 3, Unit: "siung", PrepTimeSeconds: 120},
				{Item: "Kecap manis", Amount: 30, Unit: "ml"},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Panaskan minyak, orak-arik telur hingga setengah matang."},
				{Step: 2, Text: "Masukkan bawang putih cincang, tumis hingga harum.", TimerSeconds: 90},
				{Step: 3, Text: "Tambahkan nasi dan kecap manis, aduk rata di atas api besar.", TimerSeconds: 240},
			},
			Nutrition: recipe.Nutrition{Calories: 540, Protein: 18, Carbs: 78, Fat: 16},
			IsPopular: true,
			CreatedAt: time.Date(2024, time.June, 18, 7, 30, 0, 0, time.UTC),
		},
		{
			ID:          "sate-ayam-madura",
			Title:       "Sate Ayam Madura",
			Description: "Sate ayam dengan bumbu kacang manis gurih, dibakar di atas arang hingga sedikit gosong di pinggirnya.",
			Thumbnail:   "sate ayam chicken skewers",
			Rating:      4.8,
			Reviews:     876,
			PrepTime:    45,
			CookTime:    20,
			Servings:    4,
			Difficulty:  recipe.DifficultyMenengah,
			Cuisine:     recipe.CuisineIndonesia,
			Category:    "makan-utama",
			Tags:        []string{"sate", "ayam", "bumbu kacang"},
			Ingredients: []recipe.Ingredient{
				{Item: "Daging ayam fillet", Amount: 600, Unit: "g", PrepTimeSeconds: 900},
				{Item: "Kacang tanah goreng", Amount: 200, Unit: "g", PrepTimeSeconds: 300},
				{Item: "Kecap manis", Amount: 60, Unit: "ml"},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Potong ayam dadu, tusukkan ke tusuk sate."},
				{Step: 2, Text: "Haluskan kacang goreng dengan bumbu, encerkan dengan air matang."},
				{Step: 3, Text: "Bakar sate sambil diolesi bumbu kacang dan kecap.", TimerSeconds: 600},
			},
			Nutrition: recipe.Nutrition{Calories: 480, Protein: 36, Carbs: 22, Fat: 28},
			IsPopular: true,
			CreatedAt: time.Date(2024, time.January, 25, 17, 0, 0, 0, time.UTC),
		},
		{
			ID:          "spaghetti-carbonara",
			Title:       "Spaghetti Carbonara Klasik",
			Description: "Pasta Italia dengan saus telur dan keju yang creamy tanpa krim tambahan, selesai dalam 25 menit.",
			Thumbnail:   "spaghetti carbonara pasta",
			Rating:      4.6,
			Reviews:     1532,
			PrepTime:    10,
			CookTime:    15,
			Servings:    2,
			Difficulty:  recipe.DifficultyMenengah,
			Cuisine:     recipe.CuisineEropa,
			Category:    "makan-utama",
			Tags:        []string{"pasta", "keju", "cepat"},
			Ingredients: []recipe.Ingredient{
				{Item: "Spaghetti", Amount: 200, Unit: "g"},
				{Item: "Telur", Amount: 2, Unit: "butir"},
				{Item: "Keju parmesan", Amount: 60, Unit: "g", PrepTimeSeconds: 120},
				{Item: "Daging asap", Amount: 100, Unit: "g", PrepTimeSeconds: 180},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Rebus spaghetti dalam air asin hingga al dente.", TimerSeconds: 540},
				{Step: 2, Text: "Goreng daging asap hingga renyah, sisihkan dari api."},
				{Step: 3, Text: "Campur pasta panas dengan kocokan telur dan keju, aduk cepat.", TimerSeconds: 60},
			},
			Nutrition: recipe.Nutrition{Calories: 580, Protein: 28, Carbs: 64, Fat: 24},
			IsPopular: true,
			CreatedAt: time.Date(2024, time.May, 4, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "salmon-sushi-roll",
			Title:       "Salmon Sushi Roll",
			Description: "Roll sushi isi salmon segar dan alpukat dengan nasi yang dibumbui cuka beras.",
			Thumbnail:   "salmon sushi roll",
			Rating:      4.5,
			Reviews:     654,
			PrepTime:    40,
			CookTime:    20,
			Servings:    3,
			Difficulty:  recipe.DifficultyAhli,
			Cuisine:     recipe.CuisineAsia,
			Category:    "makan-utama",
			Tags:        []string{"sushi", "ikan", "jepang"},
			Ingredients: []recipe.Ingredient{
				{Item: "Nasi sushi", Amount: 300, Unit: "g", PrepTimeSeconds: 600},
				{Item: "Ikan salmon segar", Amount: 200, Unit: "g", PrepTimeSeconds: 420},
				{Item: "Nori", Amount: 3, Unit: "butir"},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Campur nasi hangat dengan cuka beras, dinginkan."},
				{Step: 2, Text: "Tata nori, nasi, dan isian, lalu gulung dengan makisu."},
				{Step: 3, Text: "Diamkan gulungan sebelum dipotong agar set.", TimerSeconds: 300},
			},
			Nutrition: recipe.Nutrition{Calories: 420, Protein: 24, Carbs: 56, Fat: 12},
			CreatedAt: time.Date(2024, time.February, 14, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:          "burger-klasik-amerika",
			Title:       "Burger Klasik Amerika",
			Description: "Patty daging juicy dengan keju leleh, selada renyah, dan saus spesial di roti brioche panggang.",
			Thumbnail:   "classic cheeseburger",
			Rating:      4.4,
			Reviews:     980,
			PrepTime:    20,
			CookTime:    15,
			Servings:    4,
			Difficulty:  recipe.DifficultyPemula,
			Cuisine:     recipe.CuisineAmerika,
			Category:    "cemilan",
			Tags:        []string{"burger", "daging", "keju"},
			Ingredients: []recipe.Ingredient{
				{Item: "Daging giling", Amount: 500, Unit: "g", PrepTimeSeconds: 300},
				{Item: "Keju cheddar", Amount: 4, Unit: "butir"},
				{Item: "Roti burger", Amount: 4, Unit: "butir"},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Bentuk daging giling menjadi patty, bumbui garam dan lada."},
				{Step: 2, Text: "Panggang patty di wajan panas.", TimerSeconds: 480},
				{Step: 3, Text: "Susun burger dengan keju, selada, dan saus."},
			},
			Nutrition: recipe.Nutrition{Calories: 650, Protein: 34, Carbs: 42, Fat: 38},
			IsPopular: true,
			CreatedAt: time.Date(2024, time.April, 9, 18, 30, 0, 0, time.UTC),
		},
		{
			ID:          "salad-buah-yogurt",
			Title:       "Salad Buah Yogurt Madu",
			Description: "Potongan buah segar dengan saus yogurt madu yang ringan, pas untuk sarapan atau pencuci mulut.",
			Thumbnail:   "fresh fruit salad yogurt",
			Rating:      4.3,
			Reviews:     432,
			PrepTime:    15,
			CookTime:    0,
			Servings:    2,
			Difficulty:  recipe.DifficultyPemula,
			Cuisine:     recipe.CuisineHealthy,
			Category:    "sehat",
			Tags:        []string{"salad", "buah", "sehat"},
			Ingredients: []recipe.Ingredient{
				{Item: "Buah campur segar", Amount: 400, Unit: "g", PrepTimeSeconds: 600},
				{Item: "Yogurt tawar", Amount: 150, Unit: "ml"},
				{Item: "Madu", Amount: 30, Unit: "ml"},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Potong semua buah menjadi ukuran sekali suap."},
				{Step: 2, Text: "Aduk yogurt dengan madu, tuang ke atas buah."},
				{Step: 3, Text: "Dinginkan sebentar sebelum disajikan.", TimerSeconds: 900},
			},
			Nutrition: recipe.Nutrition{Calories: 210, Protein: 6, Carbs: 42, Fat: 3},
			CreatedAt: time.Date(2024, time.July, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:          "smoothie-bowl-hijau",
			Title:       "Smoothie Bowl Hijau Vegan",
			Description: "Smoothie bayam, pisang, dan santan dengan topping granola renyah, tanpa produk hewani sama sekali.",
			Thumbnail:   "green smoothie bowl vegan",
			Rating:      4.2,
			Reviews:     318,
			PrepTime:    10,
			CookTime:    0,
			Servings:    1,
			Difficulty:  recipe.DifficultyPemula,
			Cuisine:     recipe.CuisineVegan,
			Category:    "sarapan",
			Tags:        []string{"smoothie", "vegan", "sarapan"},
			Ingredients: []recipe.Ingredient{
				{Item: "Sayur bayam", Amount: 100, Unit: "g", PrepTimeSeconds: 180},
				{Item: "Buah pisang beku", Amount: 150, Unit: "g"},
				{Item: "Santan", Amount: 100, Unit: "ml"},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Blender bayam, pisang, dan santan hingga halus dan kental."},
				{Step: 2, Text: "Tuang ke mangkuk, tata topping granola dan irisan buah."},
			},
			Nutrition: recipe.Nutrition{Calories: 310, Protein: 7, Carbs: 48, Fat: 11},
			IsPopular: true,
			CreatedAt: time.Date(2024, time.August, 20, 6, 45, 0, 0, time.UTC),
		},
		{
			ID:          "pancake-fluffy",
			Title:       "Pancake Fluffy ala Kafe",
			Description: "Pancake tebal dan lembut dengan mentega dan sirup maple, rahasianya di putih telur yang dikocok kaku.",
			Thumbnail:   "fluffy pancakes maple syrup",
			Rating:      4.6,
			Reviews:     745,
			PrepTime:    15,
			CookTime:    20,
			Servings:    3,
			Difficulty:  recipe.DifficultyMenengah,
			Cuisine:     recipe.CuisineAmerika,
			Category:    "sarapan",
			Tags:        []string{"pancake", "manis", "sarapan"},
			Ingredients: []recipe.Ingredient{
				{Item: "Tepung terigu", Amount: 200, Unit: "g"},
				{Item: "Telur", Amount: 2, Unit: "butir"},
				{Item: "Gula pasir", Amount: 40, Unit: "g"},
				{Item: "Mentega", Amount: 30, Unit: "g"},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Kocok putih telur hingga kaku, sisihkan."},
				{Step: 2, Text: "Campur bahan kering dengan kuning telur dan susu, lipat putih telur."},
				{Step: 3, Text: "Masak di wajan anti lengket dengan api kecil per sisi.", TimerSeconds: 180},
			},
			Nutrition: recipe.Nutrition{Calories: 430, Protein: 12, Carbs: 62, Fat: 15},
			CreatedAt: time.Date(2024, time.May, 28, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          "es-teh-leci-serai",
			Title:       "Es Teh Leci Serai",
			Description: "Teh melati dingin dengan buah leci dan aroma serai yang menyegarkan di siang hari.",
			Thumbnail:   "lychee iced tea lemongrass",
			Rating:      4.1,
			Reviews:     203,
			PrepTime:    10,
			CookTime:    5,
			Servings:    2,
			Difficulty:  recipe.DifficultyPemula,
			Cuisine:     recipe.CuisineAsia,
			Category:    "minuman",
			Tags:        []string{"minuman", "teh", "dingin"},
			Ingredients: []recipe.Ingredient{
				{Item: "Teh melati", Amount: 2, Unit: "butir"},
				{Item: "Buah leci kaleng", Amount: 150, Unit: "g"},
				{Item: "Gula", Amount: 20, Unit: "g"},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Seduh teh dengan serai yang dimemarkan.", TimerSeconds: 240},
				{Step: 2, Text: "Larutkan gula selagi panas, lalu dinginkan."},
				{Step: 3, Text: "Sajikan dengan es batu dan buah leci."},
			},
			Nutrition: recipe.Nutrition{Calories: 120, Protein: 1, Carbs: 30, Fat: 0},
			CreatedAt: time.Date(2024, time.June, 2, 13, 20, 0, 0, time.UTC),
		},
	}
}
