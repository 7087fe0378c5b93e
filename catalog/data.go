package catalog

import "github.com/Oghenetega16/audiophile-api/models"

var products = []models.Product{
	{
		ID:          1,
		Slug:        "yx1-earphones",
		Name:        "YX1 Wireless Earphones",
		Price:       599,
		Description: "Tailor your listening experience with bespoke dynamic drivers from the new YX1 Wireless Earphones. Enjoy incredible high-fidelity sound even in noisy environments with its active noise cancellation feature.",
		Image:       "/images/products/yx1-earphones.jpg",
		Category:    models.CategoryEarphones,
		IsNew:       true,
		Includes: []models.IncludedItem{
			{Quantity: 2, Item: "Earphone unit"},
			{Quantity: 6, Item: "Multi-size earplugs"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "USB-C charging cable"},
			{Quantity: 1, Item: "Travel pouch"},
		},
		Related: []int{4, 5, 6},
	},
	{
		ID:          2,
		Slug:        "xx59-headphones",
		Name:        "XX59 Headphones",
		Price:       899,
		Description: "Enjoy your audio almost anywhere and customize it to your specific tastes with the XX59 headphones. The stylish yet durable versatile wireless headset is a brilliant companion at home or on the move.",
		Image:       "/images/products/xx59-headphones.jpg",
		Category:    models.CategoryHeadphones,
		Includes: []models.IncludedItem{
			{Quantity: 1, Item: "Headphone unit"},
			{Quantity: 2, Item: "Replacement earcups"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 5m audio cable"},
		},
		Related: []int{3, 4, 1},
	},
	{
		ID:          3,
		Slug:        "xx99-mark-one-headphones",
		Name:        "XX99 Mark I Headphones",
		Price:       1750,
		Description: "As the gold standard for headphones, the classic XX99 Mark I offers detailed and accurate audio reproduction for audiophiles, mixing engineers, and music aficionados alike in studios and on the go.",
		Image:       "/images/products/xx99-mark-one-headphones.jpg",
		Category:    models.CategoryHeadphones,
		Includes: []models.IncludedItem{
			{Quantity: 1, Item: "Headphone unit"},
			{Quantity: 2, Item: "Replacement earcups"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 5m audio cable"},
		},
		Related: []int{4, 2, 1},
	},
	{
		ID:          4,
		Slug:        "xx99-mark-two-headphones",
		Name:        "XX99 Mark II Headphones",
		Price:       2999,
		Description: "The new XX99 Mark II headphones is the pinnacle of pristine audio. It redefines your premium headphone experience by reproducing the balanced depth and precision of studio-quality sound.",
		Image:       "/images/products/xx99-mark-two-headphones.jpg",
		Category:    models.CategoryHeadphones,
		IsNew:       true,
		Includes: []models.IncludedItem{
			{Quantity: 1, Item: "Headphone unit"},
			{Quantity: 2, Item: "Replacement earcups"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 5m audio cable"},
			{Quantity: 1, Item: "Travel bag"},
		},
		Related: []int{3, 2, 1},
	},
	{
		ID:          5,
		Slug:        "zx7-speaker",
		Name:        "ZX7 Speaker",
		Price:       3500,
		Description: "Stream high quality sound wirelessly with minimal loss. The ZX7 bookshelf speaker uses high-end audiophile components that represents the top of the line powered speakers for home or studio use.",
		Image:       "/images/products/zx7-speaker.jpg",
		Category:    models.CategorySpeakers,
		Includes: []models.IncludedItem{
			{Quantity: 2, Item: "Speaker unit"},
			{Quantity: 2, Item: "Speaker cloth panel"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 10m audio cable"},
			{Quantity: 1, Item: "7.5m optical cable"},
		},
		Related: []int{6, 3, 2},
	},
	{
		ID:          6,
		Slug:        "zx9-speaker",
		Name:        "ZX9 Speaker",
		Price:       4500,
		Description: "Upgrade your sound system with the all new ZX9 active speaker. It's a bookshelf speaker system that offers truly wireless connectivity -- creating new possibilities for more pleasing and practical audio setups.",
		Image:       "/images/products/zx9-speaker.jpg",
		Category:    models.CategorySpeakers,
		IsNew:       true,
		Includes: []models.IncludedItem{
			{Quantity: 2, Item: "Speaker unit"},
			{Quantity: 2, Item: "Speaker cloth panel"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 10m audio cable"},
			{Quantity: 1, Item: "10m optical cable"},
		},
		Related: []int{5, 3, 2},
	},
}
