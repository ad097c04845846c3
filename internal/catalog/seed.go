package catalog

import "github.com/example/tablebook/internal/reservation"

// seedRestaurants is the demo data set. IDs are stable; downstream
// fixtures and the CLI examples reference them.
func seedRestaurants() []reservation.Restaurant {
	return []reservation.Restaurant{
		{
			ID: "rest_001", Name: "Trattoria di Mare", Cuisine: "Italian", PriceTier: 3, Rating: 4.5,
			Phone: "(617) 555-0101", Description: "Authentic Italian seafood in the North End",
			Location: reservation.Location{
				Latitude: 42.3656, Longitude: -71.0534,
				Address: "123 Hanover St", City: "Boston", State: "MA", PostalCode: "02113", Country: "USA",
			},
		},
		{
			ID: "rest_002", Name: "The Steakhouse", Cuisine: "American", PriceTier: 4, Rating: 4.7,
			Phone: "(617) 555-0102", Description: "Premium steaks and fine dining",
			Location: reservation.Location{
				Latitude: 42.3601, Longitude: -71.0589,
				Address: "456 Newbury St", City: "Boston", State: "MA", PostalCode: "02115", Country: "USA",
			},
		},
		{
			ID: "rest_003", Name: "Sakura Sushi", Cuisine: "Japanese", PriceTier: 2, Rating: 4.3,
			Phone: "(617) 555-0103", Description: "Fresh sushi and traditional Japanese cuisine",
			Location: reservation.Location{
				Latitude: 42.3505, Longitude: -71.0759,
				Address: "789 Commonwealth Ave", City: "Boston", State: "MA", PostalCode: "02215", Country: "USA",
			},
		},
		{
			ID: "rest_004", Name: "Le Petit Bistro", Cuisine: "French", PriceTier: 3, Rating: 4.6,
			Phone: "(617) 555-0104", Description: "Classic French bistro fare",
			Location: reservation.Location{
				Latitude: 42.3581, Longitude: -71.0636,
				Address: "321 Beacon St", City: "Boston", State: "MA", PostalCode: "02116", Country: "USA",
			},
		},
		{
			ID: "rest_005", Name: "Taqueria Azteca", Cuisine: "Mexican", PriceTier: 1, Rating: 4.1,
			Phone: "(617) 555-0105", Description: "Authentic Mexican street food",
			Location: reservation.Location{
				Latitude: 42.3736, Longitude: -71.1097,
				Address: "555 Cambridge St", City: "Boston", State: "MA", PostalCode: "02134", Country: "USA",
			},
		},
		{
			ID: "rest_006", Name: "Golden Dragon", Cuisine: "Chinese", PriceTier: 2, Rating: 4.4,
			Phone: "(212) 555-0201", Description: "Szechuan and Cantonese specialties",
			Location: reservation.Location{
				Latitude: 40.7589, Longitude: -73.9851,
				Address: "100 Mott St", City: "New York", State: "NY", PostalCode: "10013", Country: "USA",
			},
		},
		{
			ID: "rest_007", Name: "Bella Napoli", Cuisine: "Italian", PriceTier: 2, Rating: 4.2,
			Phone: "(212) 555-0202", Description: "Wood-fired Neapolitan pizza",
			Location: reservation.Location{
				Latitude: 40.7614, Longitude: -73.9776,
				Address: "250 Mulberry St", City: "New York", State: "NY", PostalCode: "10012", Country: "USA",
			},
		},
		{
			ID: "rest_008", Name: "Spice Route", Cuisine: "Indian", PriceTier: 2, Rating: 4.5,
			Phone: "(415) 555-0301", Description: "Modern Indian cuisine with California flair",
			Location: reservation.Location{
				Latitude: 37.7749, Longitude: -122.4194,
				Address: "88 Mission St", City: "San Francisco", State: "CA", PostalCode: "94105", Country: "USA",
			},
		},
		{
			ID: "rest_009", Name: "The Garden Café", Cuisine: "Vegetarian", PriceTier: 2, Rating: 4.4,
			Phone: "(415) 555-0302", Description: "Farm-to-table vegetarian dining",
			Location: reservation.Location{
				Latitude: 37.7833, Longitude: -122.4167,
				Address: "456 Valencia St", City: "San Francisco", State: "CA", PostalCode: "94110", Country: "USA",
			},
		},
		{
			ID: "rest_010", Name: "BBQ Pit Masters", Cuisine: "BBQ", PriceTier: 2, Rating: 4.6,
			Phone: "(512) 555-0401", Description: "Texas-style smoked meats",
			Location: reservation.Location{
				Latitude: 30.2672, Longitude: -97.7431,
				Address: "123 Sixth St", City: "Austin", State: "TX", PostalCode: "78701", Country: "USA",
			},
		},
	}
}
