package catalog

import "github.com/momently/go-gift-backend/internal/domain"

// withTags stamps the given tag vocabularies onto every product in ps,
// returning a new slice. Pools share tag slices; none of it is mutated after
// init.
func withTags(ps []domain.Product, recipients, interests, urgencies []string) []domain.Product {
	out := make([]domain.Product, len(ps))
	for i, p := range ps {
		p.RecipientTags = recipients
		p.InterestTags = interests
		p.UrgencyTags = urgencies
		out[i] = p
	}
	return out
}

var recipientPools = map[domain.Recipient][]domain.Product{
	domain.RecipientHer: withTags([]domain.Product{
		{
			ID:       "her-1",
			Name:     "Pearl Huggie Earrings",
			Price:    48,
			ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=pearl+earrings&tag=momently-20",
			Reason:   "Timeless shine for daily wear.",
		},
		{
			ID:       "her-2",
			Name:     "Blush Cashmere Scarf",
			Price:    72,
			ImageURL: "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=cashmere+scarf&tag=momently-20",
			Reason:   "Soft warmth with a gentle hue.",
		},
		{
			ID:       "her-3",
			Name:     "Rose Vanilla Candle",
			Price:    28,
			ImageURL: "https://images.unsplash.com/photo-1506617420156-8e4536971650?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=rose+candle&tag=momently-20",
			Reason:   "Cozy scent for calm nights.",
		},
	}, []string{"for_her"}, nil, nil),

	domain.RecipientHim: withTags([]domain.Product{
		{
			ID:       "him-1",
			Name:     "Walnut Desk Charger",
			Price:    59,
			ImageURL: "https://images.unsplash.com/photo-1527443224154-d2eec626e034?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=wireless+desk+charger&tag=momently-20",
			Reason:   "Keeps his setup tidy and premium.",
		},
		{
			ID:       "him-2",
			Name:     "Weekend Duffel",
			Price:    95,
			ImageURL: "https://images.unsplash.com/photo-1462396881884-de2c07cb95ed?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=weekend+duffel&tag=momently-20",
			Reason:   "Ready for quick trips together.",
		},
		{
			ID:       "him-3",
			Name:     "Espresso Gift Set",
			Price:    42,
			ImageURL: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=espresso+gift+set&tag=momently-20",
			Reason:   "Slow-morning coffee ritual.",
		},
	}, []string{"for_him"}, nil, nil),

	domain.RecipientParents: withTags([]domain.Product{
		{
			ID:       "parents-1",
			Name:     "Heirloom Recipe Journal",
			Price:    36,
			ImageURL: "https://images.unsplash.com/photo-1473186578172-c141e6798cf4?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=recipe+journal&tag=momently-20",
			Reason:   "Collect family dishes in one place.",
		},
		{
			ID:       "parents-2",
			Name:     "Digital Frame",
			Price:    119,
			ImageURL: "https://images.unsplash.com/photo-1516035050185-99b3e264a5a1?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=digital+frame&tag=momently-20",
			Reason:   "Auto-updates with shared photos.",
		},
		{
			ID:       "parents-3",
			Name:     "Tea Tasting Box",
			Price:    34,
			ImageURL: "https://images.unsplash.com/photo-1447933601403-0c6688de566e?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=tea+tasting+box&tag=momently-20",
			Reason:   "Slow afternoons made special.",
		},
	}, []string{"for_parents"}, nil, nil),

	domain.RecipientFriends: withTags([]domain.Product{
		{
			ID:       "friends-1",
			Name:     "Movie Night Projector",
			Price:    78,
			ImageURL: "https://images.unsplash.com/photo-1444044205806-38f3ed106c10?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=mini+projector&tag=momently-20",
			Reason:   "Instant cozy hangs anywhere.",
		},
		{
			ID:       "friends-2",
			Name:     "Matcha Starter Kit",
			Price:    52,
			ImageURL: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=matcha+kit&tag=momently-20",
			Reason:   "A calm ritual to share.",
		},
		{
			ID:       "friends-3",
			Name:     "Photo Strip Printer",
			Price:    88,
			ImageURL: "https://images.unsplash.com/photo-1516035050185-99b3e264a5a1?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=photo+strip+printer&tag=momently-20",
			Reason:   "Capture nights out as keepsakes.",
		},
	}, []string{"for_friends"}, nil, nil),

	domain.RecipientKids: withTags([]domain.Product{
		{
			ID:       "kids-1",
			Name:     "STEM Robot Kit",
			Price:    49,
			ImageURL: "https://images.unsplash.com/photo-1545239351-1141bd82e8a6?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=stem+robot+kit&tag=momently-20",
			Reason:   "Hands-on coding fun.",
		},
		{
			ID:       "kids-2",
			Name:     "Soft Plush Bunny",
			Price:    24,
			ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=plush+bunny&tag=momently-20",
			Reason:   "Adorable and nap-ready.",
		},
		{
			ID:       "kids-3",
			Name:     "Creative Art Set",
			Price:    29,
			ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=creative+art+set&tag=momently-20",
			Reason:   "Spark imagination with color.",
		},
	}, []string{"for_kids"}, nil, nil),
}

var budgetUnder25 = []domain.Product{
	{
		ID:       "u25-1",
		Name:     "Ceramic Mug",
		Price:    18,
		ImageURL: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=ceramic+mug&tag=momently-20",
		Reason:   "Cozy sips all season.",
	},
	{
		ID:       "u25-2",
		Name:     "Mini Succulent Trio",
		Price:    22,
		ImageURL: "https://images.unsplash.com/photo-1501004318641-b39e6451bec6?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=mini+succulent+trio&tag=momently-20",
		Reason:   "Low-maintenance greenery.",
	},
	{
		ID:       "u25-3",
		Name:     "Silk Sleep Mask",
		Price:    19,
		ImageURL: "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=silk+sleep+mask&tag=momently-20",
		Reason:   "Comfort for travelers.",
	},
}

var budget25to50 = []domain.Product{
	{
		ID:       "25-50-1",
		Name:     "Aroma Diffuser",
		Price:    38,
		ImageURL: "https://images.unsplash.com/photo-1524592094714-0f0654e20314?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=aroma+diffuser&tag=momently-20",
		Reason:   "Sets a soothing vibe fast.",
	},
	{
		ID:       "25-50-2",
		Name:     "Travel Jewelry Case",
		Price:    42,
		ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=travel+jewelry+case&tag=momently-20",
		Reason:   "Keeps favorites safe on trips.",
	},
	{
		ID:       "25-50-3",
		Name:     "Cozy Throw Blanket",
		Price:    48,
		ImageURL: "https://images.unsplash.com/photo-1473186578172-c141e6798cf4?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=throw+blanket&tag=momently-20",
		Reason:   "Warm and movie-night ready.",
	},
}

var budget50to100 = []domain.Product{
	{
		ID:       "50-100-1",
		Name:     "Instant Camera",
		Price:    88,
		ImageURL: "https://images.unsplash.com/photo-1516035050185-99b3e264a5a1?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=instant+camera&tag=momently-20",
		Reason:   "Prints memories on the spot.",
	},
	{
		ID:       "50-100-2",
		Name:     "Handcrafted Speaker",
		Price:    92,
		ImageURL: "https://images.unsplash.com/photo-1527443224154-d2eec626e034?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=wood+speaker&tag=momently-20",
		Reason:   "Rich sound with warm finish.",
	},
	{
		ID:       "50-100-3",
		Name:     "Spa Night Kit",
		Price:    65,
		ImageURL: "https://images.unsplash.com/photo-1524592094714-0f0654e20314?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=spa+kit&tag=momently-20",
		Reason:   "Everything for a reset evening.",
	},
}

var budgetOver100 = []domain.Product{
	{
		ID:       "100-1",
		Name:     "Premium Cashmere Wrap",
		Price:    160,
		ImageURL: "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=cashmere+wrap&tag=momently-20",
		Reason:   "Luxuriously soft, heirloom quality.",
	},
	{
		ID:       "100-2",
		Name:     "Luxe Espresso Machine",
		Price:    220,
		ImageURL: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=espresso+machine&tag=momently-20",
		Reason:   "Cafe-grade coffee at home.",
	},
	{
		ID:       "100-3",
		Name:     "Smart Suitcase",
		Price:    189,
		ImageURL: "https://images.unsplash.com/photo-1462396881884-de2c07cb95ed?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=smart+suitcase&tag=momently-20",
		Reason:   "Trackable, durable, trip-ready.",
	},
}

var interestPools = map[string][]domain.Product{
	"tech": withTags([]domain.Product{
		{
			ID:       "tech-1",
			Name:     "Noise-Canceling Earbuds",
			Price:    129,
			ImageURL: "https://images.unsplash.com/photo-1518444057712-a0a1f66f7e57?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=wireless+earbuds&tag=momently-20",
			Reason:   "Noise-free focus on the go.",
		},
		{
			ID:       "tech-2",
			Name:     "Smart Home Starter",
			Price:    99,
			ImageURL: "https://images.unsplash.com/photo-1545239351-1141bd82e8a6?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=smart+home+kit&tag=momently-20",
			Reason:   "Lights and routines in minutes.",
		},
		{
			ID:       "tech-3",
			Name:     "Mini Projector",
			Price:    85,
			ImageURL: "https://images.unsplash.com/photo-1444044205806-38f3ed106c10?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=mini+projector&tag=momently-20",
			Reason:   "Pocket cinema for gatherings.",
		},
	}, nil, []string{"tech"}, nil),

	"beauty": withTags([]domain.Product{
		{
			ID:       "beauty-1",
			Name:     "Silk Pillowcase",
			Price:    42,
			ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=silk+pillowcase&tag=momently-20",
			Reason:   "Smooth skin and hair mornings.",
		},
		{
			ID:       "beauty-2",
			Name:     "Glow Serum Set",
			Price:    58,
			ImageURL: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=glow+serum+set&tag=momently-20",
			Reason:   "Hydrated, luminous skin.",
		},
		{
			ID:       "beauty-3",
			Name:     "Spa Headband + Roller",
			Price:    29,
			ImageURL: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=spa+roller+set&tag=momently-20",
			Reason:   "At-home facial upgrade.",
		},
	}, nil, []string{"beauty"}, nil),

	"cozy": withTags([]domain.Product{
		{
			ID:       "cozy-1",
			Name:     "Cloud Slippers",
			Price:    32,
			ImageURL: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=cloud+slippers&tag=momently-20",
			Reason:   "Pillowy soft for downtime.",
		},
		{
			ID:       "cozy-2",
			Name:     "Weighted Blanket",
			Price:    89,
			ImageURL: "https://images.unsplash.com/photo-1473186578172-c141e6798cf4?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=weighted+blanket&tag=momently-20",
			Reason:   "Calming comfort for rest.",
		},
		{
			ID:       "cozy-3",
			Name:     "Tea Sampler",
			Price:    26,
			ImageURL: "https://images.unsplash.com/photo-1447933601403-0c6688de566e?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=tea+sampler&tag=momently-20",
			Reason:   "Soothing flavors for nights in.",
		},
	}, nil, []string{"cozy"}, nil),

	"fitness": withTags([]domain.Product{
		{
			ID:       "fit-1",
			Name:     "Smart Jump Rope",
			Price:    39,
			ImageURL: "https://images.unsplash.com/photo-1452626038306-9aae5e071dd3?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=smart+jump+rope&tag=momently-20",
			Reason:   "Track cardio anywhere.",
		},
		{
			ID:       "fit-2",
			Name:     "Yoga Mat + Strap",
			Price:    48,
			ImageURL: "https://images.unsplash.com/photo-1518611012118-696072aa579a?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=yoga+mat+and+strap&tag=momently-20",
			Reason:   "Supportive flow at home.",
		},
		{
			ID:       "fit-3",
			Name:     "Recovery Roller",
			Price:    29,
			ImageURL: "https://images.unsplash.com/photo-1518611012118-696072aa579a?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=recovery+roller&tag=momently-20",
			Reason:   "Loosens tight spots post-workout.",
		},
	}, nil, []string{"fitness"}, nil),

	"photography": withTags([]domain.Product{
		{
			ID:       "photo-1",
			Name:     "Instant Film Pack",
			Price:    35,
			ImageURL: "https://images.unsplash.com/photo-1516035050185-99b3e264a5a1?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=instant+film&tag=momently-20",
			Reason:   "Keep memories tangible.",
		},
		{
			ID:       "photo-2",
			Name:     "Softbox Light",
			Price:    68,
			ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=softbox+light&tag=momently-20",
			Reason:   "Better portraits indoors.",
		},
		{
			ID:       "photo-3",
			Name:     "Camera Strap",
			Price:    44,
			ImageURL: "https://images.unsplash.com/photo-1527443224154-d2eec626e034?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=camera+strap&tag=momently-20",
			Reason:   "Comfortable carry all day.",
		},
	}, nil, []string{"photography"}, nil),

	"fashion": withTags([]domain.Product{
		{
			ID:       "fashion-1",
			Name:     "Minimal Watch",
			Price:    120,
			ImageURL: "https://images.unsplash.com/photo-1451290337906-ac938fcadfce?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=minimal+watch&tag=momently-20",
			Reason:   "Clean lines for any outfit.",
		},
		{
			ID:       "fashion-2",
			Name:     "Leather Card Holder",
			Price:    48,
			ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=leather+card+holder&tag=momently-20",
			Reason:   "Slim and premium daily carry.",
		},
		{
			ID:       "fashion-3",
			Name:     "Wool Beanie",
			Price:    32,
			ImageURL: "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=wool+beanie&tag=momently-20",
			Reason:   "Warmth with style.",
		},
	}, nil, []string{"fashion"}, nil),

	"gaming": withTags([]domain.Product{
		{
			ID:       "gaming-1",
			Name:     "Wireless Controller",
			Price:    64,
			ImageURL: "https://images.unsplash.com/photo-1581898518804-8c32ff3272a0?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=wireless+controller&tag=momently-20",
			Reason:   "Extra player ready anytime.",
		},
		{
			ID:       "gaming-2",
			Name:     "RGB Desk Mat",
			Price:    38,
			ImageURL: "https://images.unsplash.com/photo-1600267165505-4a5991f8035e?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=rgb+desk+mat&tag=momently-20",
			Reason:   "Immersive setup glow.",
		},
		{
			ID:       "gaming-3",
			Name:     "Comfort Headset",
			Price:    79,
			ImageURL: "https://images.unsplash.com/photo-1511512578047-dfb367046420?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=gaming+headset&tag=momently-20",
			Reason:   "Crisp sound for sessions.",
		},
	}, nil, []string{"gaming"}, nil),
}

var urgencyPools = map[domain.Urgency][]domain.Product{
	domain.UrgencyTomorrow: withTags([]domain.Product{
		{
			ID:       "fast-1",
			Name:     "Prime Bouquet",
			Price:    45,
			ImageURL: "https://images.unsplash.com/photo-1501004318641-b39e6451bec6?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=flower+bouquet+prime&tag=momently-20",
			Reason:   "Arrives next-day with a note.",
		},
		{
			ID:       "fast-2",
			Name:     "Digital Frame (Fast Ship)",
			Price:    110,
			ImageURL: "https://images.unsplash.com/photo-1516035050185-99b3e264a5a1?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=digital+frame+fast+shipping&tag=momently-20",
			Reason:   "Preload photos before gifting.",
		},
		{
			ID:       "fast-3",
			Name:     "Cozy Hoodie",
			Price:    58,
			ImageURL: "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=cozy+hoodie+prime&tag=momently-20",
			Reason:   "Comfort delivered by tomorrow.",
		},
	}, nil, nil, []string{"tomorrow"}),

	domain.UrgencyThisWeek: withTags([]domain.Product{
		{
			ID:       "week-1",
			Name:     "Artisanal Chocolate Box",
			Price:    36,
			ImageURL: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=artisanal+chocolate+box&tag=momently-20",
			Reason:   "Arrives in days, delight on arrival.",
		},
		{
			ID:       "week-2",
			Name:     "Custom Photo Book",
			Price:    68,
			ImageURL: "https://images.unsplash.com/photo-1473186578172-c141e6798cf4?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=custom+photo+book&tag=momently-20",
			Reason:   "Memories bound beautifully.",
		},
		{
			ID:       "week-3",
			Name:     "Cozy Slippers",
			Price:    32,
			ImageURL: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=cozy+slippers&tag=momently-20",
			Reason:   "Snug by the weekend.",
		},
	}, nil, nil, []string{"this_week"}),

	domain.UrgencyDigital: withTags([]domain.Product{
		{
			ID:       "digital-1",
			Name:     "Masterclass Pass",
			Price:    90,
			ImageURL: "https://images.unsplash.com/photo-1521737604893-d14cc237f11d?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=masterclass+gift&tag=momently-20",
			Reason:   "Instant access to premium classes.",
		},
		{
			ID:       "digital-2",
			Name:     "Music Streaming Gift",
			Price:    30,
			ImageURL: "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=music+streaming+gift&tag=momently-20",
			Reason:   "Delivered instantly to inbox.",
		},
		{
			ID:       "digital-3",
			Name:     "Meditation App Year",
			Price:    60,
			ImageURL: "https://images.unsplash.com/photo-1518611012118-696072aa579a?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=meditation+app+gift&tag=momently-20",
			Reason:   "Calm on-demand, same day.",
		},
	}, nil, nil, []string{"digital"}),

	domain.UrgencyLocal: withTags([]domain.Product{
		{
			ID:       "local-1",
			Name:     "Spa e-Gift Card",
			Price:    75,
			ImageURL: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=spa+gift+card&tag=momently-20",
			Reason:   "Redeemable nearby, instant delivery.",
		},
		{
			ID:       "local-2",
			Name:     "Restaurant Experience",
			Price:    100,
			ImageURL: "https://images.unsplash.com/photo-1521017432531-fbd92d768814?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=restaurant+gift+card&tag=momently-20",
			Reason:   "Date-night ready within the week.",
		},
		{
			ID:       "local-3",
			Name:     "Flower Subscription",
			Price:    55,
			ImageURL: "https://images.unsplash.com/photo-1501004318641-b39e6451bec6?auto=format&fit=crop&w=900&q=80",
			BuyURL:   "https://www.amazon.com/s?k=flower+subscription&tag=momently-20",
			Reason:   "Fresh stems delivered locally.",
		},
	}, nil, nil, []string{"local"}),
}

var sponsoredPool = []domain.Product{
	{
		ID:       "spon-1",
		Name:     "Luxe Sleep Bundle",
		Price:    140,
		ImageURL: "https://images.unsplash.com/photo-1501004318641-b39e6451bec6?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=luxe+sleep+bundle&tag=momently-20",
		Reason:   "Partner offer: premium rest kit.",
	},
	{
		ID:       "spon-2",
		Name:     "Designer Candle Duo",
		Price:    64,
		ImageURL: "https://images.unsplash.com/photo-1506617420156-8e4536971650?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=designer+candle+set&tag=momently-20",
		Reason:   "Limited drop, partner pick.",
	},
	{
		ID:       "spon-3",
		Name:     "Art Print Set",
		Price:    58,
		ImageURL: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&w=900&q=80",
		BuyURL:   "https://www.amazon.com/s?k=art+print+set&tag=momently-20",
		Reason:   "Curated by creators we love.",
	},
}
