package gazetteer

import "github.com/localnewslab/placerank/internal/model"

// BuiltinSeed returns the bundled Pittsburgh region gazetteer:
// Pennsylvania, Allegheny County, the city of Pittsburgh with its
// neighborhoods, and the county municipalities. Municipality aliases
// include the full name with its legal suffix since articles use both
// forms.
func BuiltinSeed() *Seed {
	places := []SeedPlace{
		{Name: "Pennsylvania", Type: model.PlaceState, Aliases: []string{"PA"}},
		{Name: "Allegheny County", Type: model.PlaceCounty, Parent: "Pennsylvania"},
		{
			Name: "Pittsburgh", Type: model.PlaceCity, Parent: "Allegheny County",
			Aliases:     []string{"City of Pittsburgh"},
			Coordinates: &Coordinates{Lat: 40.4406, Lng: -79.9959},
		},
	}

	neighborhoods := []SeedPlace{
		{Name: "Oakland", Region: "Central", Aliases: []string{"North Oakland", "South Oakland", "Central Oakland", "West Oakland"}},
		{Name: "Downtown", Region: "Central", Aliases: []string{"Golden Triangle", "Central Business District"}},
		{Name: "Strip District", Region: "Central", Aliases: []string{"The Strip"}},
		{Name: "Hill District", Region: "Central", Aliases: []string{"The Hill"}},
		{Name: "Polish Hill", Region: "Central"},
		{Name: "Bloomfield", Region: "East End"},
		{Name: "Shadyside", Region: "East End"},
		{Name: "Squirrel Hill", Region: "East End", Aliases: []string{"Squirrel Hill North", "Squirrel Hill South"}},
		{Name: "East Liberty", Region: "East End", Aliases: []string{"Eastside"}},
		{Name: "Garfield", Region: "East End"},
		{Name: "Highland Park", Region: "East End"},
		{Name: "Homewood", Region: "East End", Aliases: []string{"Homewood North", "Homewood South", "Homewood West"}},
		{Name: "Point Breeze", Region: "East End"},
		{Name: "Regent Square", Region: "East End"},
		{Name: "Morningside", Region: "East End"},
		{Name: "Lawrenceville", Region: "East End", Aliases: []string{"Upper Lawrenceville", "Lower Lawrenceville", "Central Lawrenceville"}},
		{Name: "Hazelwood", Region: "East End"},
		{Name: "Greenfield", Region: "East End"},
		{Name: "South Side Flats", Region: "South", Aliases: []string{"South Side"}},
		{Name: "South Side Slopes", Region: "South"},
		{Name: "Mount Washington", Region: "South", Aliases: []string{"Mt. Washington", "Mt Washington"}},
		{Name: "Allentown", Region: "South"},
		{Name: "Knoxville", Region: "South"},
		{Name: "Carrick", Region: "South"},
		{Name: "Brookline", Region: "South"},
		{Name: "Beechview", Region: "South"},
		{Name: "Manchester", Region: "North Side"},
		{Name: "Troy Hill", Region: "North Side"},
		{Name: "Spring Garden", Region: "North Side"},
		{Name: "North Shore", Region: "North Side"},
		{Name: "Sheraden", Region: "West End"},
		{Name: "Elliott", Region: "West End"},
	}
	for _, n := range neighborhoods {
		n.Type = model.PlaceNeighborhood
		n.Parent = "Pittsburgh"
		places = append(places, n)
	}

	municipalities := []SeedPlace{
		{Name: "Sewickley", Region: "North", Aliases: []string{"Sewickley Borough"}},
		{Name: "Sewickley Heights", Region: "North", Aliases: []string{"Sewickley Heights Borough"}},
		{Name: "Moon Township", Region: "West", Aliases: []string{"Moon"}},
		{Name: "Robinson Township", Region: "West", Aliases: []string{"Robinson"}},
		{Name: "Coraopolis", Region: "West", Aliases: []string{"Coraopolis Borough"}},
		{Name: "Carnegie", Region: "West", Aliases: []string{"Carnegie Borough"}},
		{Name: "Monroeville", Region: "East", Aliases: []string{"Monroeville Municipality"}},
		{Name: "Penn Hills", Region: "East", Aliases: []string{"Penn Hills Township"}},
		{Name: "Wilkinsburg", Region: "East", Aliases: []string{"Wilkinsburg Borough"}},
		{Name: "Swissvale", Region: "East", Aliases: []string{"Swissvale Borough"}},
		{Name: "Braddock", Region: "East", Aliases: []string{"Braddock Borough"}},
		{Name: "Homestead", Region: "South", Aliases: []string{"Homestead Borough"}},
		{Name: "Munhall", Region: "South", Aliases: []string{"Munhall Borough"}},
		{Name: "West Mifflin", Region: "South", Aliases: []string{"West Mifflin Borough"}},
		{Name: "McKeesport", Region: "South", Aliases: []string{"City of McKeesport"}},
		{Name: "Bethel Park", Region: "South", Aliases: []string{"Bethel Park Municipality"}},
		{Name: "Mount Lebanon", Region: "South", Aliases: []string{"Mt. Lebanon", "Mt Lebanon"}},
		{Name: "Upper St. Clair", Region: "South", Aliases: []string{"Upper St. Clair Township"}},
		{Name: "Ross Township", Region: "North", Aliases: []string{"Ross"}},
		{Name: "Shaler Township", Region: "North", Aliases: []string{"Shaler"}},
		{Name: "Fox Chapel", Region: "North", Aliases: []string{"Fox Chapel Borough"}},
	}
	for _, m := range municipalities {
		m.Type = model.PlaceMunicipality
		m.Parent = "Allegheny County"
		places = append(places, m)
	}

	return &Seed{Places: places}
}
