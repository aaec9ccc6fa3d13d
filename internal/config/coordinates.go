package config

// Built-in coordinate tables, curated from the NAVCEN zone list. They are
// configuration data, not behavior: YAML entries extend or override them.

// defaultZoneCentroids places the zone-level dot for each COTP zone.
func defaultZoneCentroids() map[string]Coordinate {
	return map[string]Coordinate{
		"CHARLESTON":                             {Lat: 32.7765, Lon: -79.9253},
		"MIAMI":                                  {Lat: 25.7617, Lon: -80.1918},
		"HOUSTON-GALVESTON":                      {Lat: 29.7604, Lon: -95.2631},
		"LOS ANGELES-LONG BEACH":                 {Lat: 33.7405, Lon: -118.2437},
		"SEATTLE (PUGET SOUND)":                  {Lat: 47.6062, Lon: -122.3321},
		"NEW YORK":                               {Lat: 40.6892, Lon: -74.0445},
		"NEW ORLEANS":                            {Lat: 29.9511, Lon: -90.0715},
		"BOSTON":                                 {Lat: 42.3601, Lon: -71.0589},
		"SAVANNAH":                               {Lat: 32.1368, Lon: -81.0901},
		"SAN FRANCISCO":                          {Lat: 37.7749, Lon: -122.4194},
		"SAN DIEGO":                              {Lat: 32.7157, Lon: -117.1611},
		"CORPUS CHRISTI":                         {Lat: 27.8006, Lon: -97.3964},
		"PORT ARTHUR AND LAKE CHARLES":           {Lat: 29.9544, Lon: -93.9300},
		"MOBILE":                                 {Lat: 30.6954, Lon: -88.0399},
		"JACKSONVILLE":                           {Lat: 30.3322, Lon: -81.6557},
		"HONOLULU":                               {Lat: 21.3099, Lon: -157.8581},
		"DELAWARE BAY":                           {Lat: 39.4593, Lon: -75.4145},
		"VIRGINIA":                               {Lat: 36.8468, Lon: -76.2951},
		"COLUMBIA RIVER":                         {Lat: 46.2084, Lon: -123.8312},
		"DETROIT":                                {Lat: 42.3314, Lon: -83.0458},
		"DULUTH":                                 {Lat: 46.7867, Lon: -92.1005},
		"EASTERN GREAT LAKES":                    {Lat: 42.8864, Lon: -78.8784},
		"GUAM":                                   {Lat: 13.4443, Lon: 144.7937},
		"HOUMA":                                  {Lat: 29.5958, Lon: -90.7195},
		"KEY WEST":                               {Lat: 24.5551, Lon: -81.7800},
		"LAKE MICHIGAN":                          {Lat: 43.0389, Lon: -87.9065},
		"LONG ISLAND SOUND":                      {Lat: 41.0534, Lon: -73.5387},
		"LOWER MISSISSIPPI RIVER (MEMPHIS)":      {Lat: 35.1495, Lon: -90.0490},
		"MARYLAND-NCR":                           {Lat: 38.9072, Lon: -77.0369},
		"NORTH CAROLINA":                         {Lat: 34.7293, Lon: -76.7266},
		"NORTHERN GREAT LAKES":                   {Lat: 46.4977, Lon: -84.3476},
		"NORTHERN NEW ENGLAND (PORTLAND, MAINE)": {Lat: 43.6591, Lon: -70.2568},
		"OHIO VALLEY":                            {Lat: 38.2527, Lon: -85.7585},
		"PITTSBURGH":                             {Lat: 40.4406, Lon: -79.9959},
		"PRINCE WILLIAM SOUND (VALDEZ)":          {Lat: 61.1308, Lon: -146.3486},
		"SAN JUAN":                               {Lat: 18.4655, Lon: -66.1057},
		"SEAK - SOUTHEAST ALASKA (JUNEAU)":       {Lat: 58.3019, Lon: -134.4197},
		"SOUTHEASTERN NEW ENGLAND (PROVIDENCE)":  {Lat: 41.8240, Lon: -71.4128},
		"ST. PETERSBURG":                         {Lat: 27.7676, Lon: -82.6403},
		"UPPER MISSISSIPPI RIVER (ST. LOUIS)":    {Lat: 38.6270, Lon: -90.1994},
		"WESTERN ALASKA (ANCHORAGE)":             {Lat: 61.2181, Lon: -149.9003},
	}
}

// defaultSubPortCoordinates holds curated sub-port positions, keyed by
// "ZONE|SUBPORT" (upper-cased). Sub-ports missing here get a deterministic
// nudge off the zone centroid instead.
func defaultSubPortCoordinates() map[string]Coordinate {
	return map[string]Coordinate{
		"CHARLESTON|BEAUFORT":                        {Lat: 32.3539, Lon: -80.6703},
		"CHARLESTON|CHARLESTON":                      {Lat: 32.7765, Lon: -79.9253},
		"CHARLESTON|GEORGETOWN":                      {Lat: 33.3766, Lon: -79.2945},
		"CHARLESTON|HILTON HEAD":                     {Lat: 32.1440, Lon: -80.8431},
		"CHARLESTON|LITTLE RIVER":                    {Lat: 33.5826, Lon: -78.9291},
		"CHARLESTON|MCCLELLANVILLE":                  {Lat: 33.0296, Lon: -79.4606},
		"CHARLESTON|MURRELLS INLET":                  {Lat: 33.5460, Lon: -78.9950},
		"CHARLESTON|MYRTLE BEACH":                    {Lat: 33.6946, Lon: -78.8910},
		"CHARLESTON|PORT ROYAL":                      {Lat: 32.3780, Lon: -80.6850},
		"HOUSTON-GALVESTON|FREEPORT":                 {Lat: 28.5420, Lon: -95.1170},
		"HOUSTON-GALVESTON|GALVESTON":                {Lat: 29.3013, Lon: -94.8177},
		"HOUSTON-GALVESTON|HOUSTON":                  {Lat: 29.7604, Lon: -95.3698},
		"HOUSTON-GALVESTON|TEXAS CITY":               {Lat: 29.4170, Lon: -94.9030},
		"MIAMI|FORT PIERCE":                          {Lat: 27.1002, Lon: -80.1293},
		"MIAMI|MIAMI":                                {Lat: 25.7617, Lon: -80.1918},
		"MIAMI|MIAMI RIVER":                          {Lat: 25.7700, Lon: -80.2100},
		"MIAMI|PORT EVERGLADES":                      {Lat: 26.0874, Lon: -80.1100},
		"MIAMI|PORT OF PALM BEACH":                   {Lat: 26.7315, Lon: -80.0364},
		"NEW YORK|NEW YORK":                          {Lat: 40.6892, Lon: -74.0445},
		"NEW YORK|BROOKLYN":                          {Lat: 40.6782, Lon: -73.9442},
		"NEW YORK|STATEN ISLAND":                     {Lat: 40.5795, Lon: -74.1502},
		"LOS ANGELES-LONG BEACH|LOS ANGELES":         {Lat: 33.7405, Lon: -118.2437},
		"LOS ANGELES-LONG BEACH|LONG BEACH":          {Lat: 33.7700, Lon: -118.1933},
		"NEW ORLEANS|NEW ORLEANS":                    {Lat: 29.9511, Lon: -90.0715},
		"NEW ORLEANS|BATON ROUGE":                    {Lat: 30.4515, Lon: -91.1871},
		"BOSTON|BOSTON":                              {Lat: 42.3601, Lon: -71.0589},
		"SAVANNAH|SAVANNAH":                          {Lat: 32.1368, Lon: -81.0901},
		"SAVANNAH|BRUNSWICK":                         {Lat: 31.1467, Lon: -81.5158},
		"SAN FRANCISCO|SAN FRANCISCO":                {Lat: 37.7749, Lon: -122.4194},
		"SAN FRANCISCO|OAKLAND":                      {Lat: 37.8044, Lon: -122.2711},
		"SAN FRANCISCO|STOCKTON":                     {Lat: 37.9577, Lon: -121.2908},
		"SEATTLE (PUGET SOUND)|SEATTLE":              {Lat: 47.6062, Lon: -122.3321},
		"SEATTLE (PUGET SOUND)|TACOMA":               {Lat: 47.2529, Lon: -122.4443},
		"SAN DIEGO|SAN DIEGO":                        {Lat: 32.7157, Lon: -117.1611},
		"CORPUS CHRISTI|CORPUS CHRISTI":              {Lat: 27.8006, Lon: -97.3964},
		"JACKSONVILLE|JACKSONVILLE":                  {Lat: 30.3322, Lon: -81.6557},
		"JACKSONVILLE|BRUNSWICK":                     {Lat: 31.1467, Lon: -81.5158},
		"MOBILE|MOBILE":                              {Lat: 30.6954, Lon: -88.0399},
		"KEY WEST|KEY WEST":                          {Lat: 24.5551, Lon: -81.7800},
		"VIRGINIA|NORFOLK":                           {Lat: 36.8508, Lon: -76.0121},
		"VIRGINIA|HAMPTON ROADS":                     {Lat: 36.8300, Lon: -76.1000},
		"DELAWARE BAY|WILMINGTON":                    {Lat: 39.7392, Lon: -75.5244},
		"DELAWARE BAY|PHILADELPHIA":                  {Lat: 39.9526, Lon: -75.1652},
		"NORTH CAROLINA|MOREHEAD CITY":               {Lat: 34.7226, Lon: -76.7249},
		"NORTH CAROLINA|WILMINGTON":                  {Lat: 34.2258, Lon: -77.9461},
		"HONOLULU|HONOLULU":                          {Lat: 21.3069, Lon: -157.8583},
		"PORT ARTHUR AND LAKE CHARLES|PORT ARTHUR":   {Lat: 29.8946, Lon: -94.0153},
		"PORT ARTHUR AND LAKE CHARLES|LAKE CHARLES":  {Lat: 30.1852, Lon: -93.2688},
		"HOUMA|HOUMA":                                {Lat: 29.5958, Lon: -90.7195},
		"HOUMA|MORGAN CITY":                          {Lat: 29.6944, Lon: -91.2083},
		"ST. PETERSBURG|ST. PETERSBURG":              {Lat: 27.7676, Lon: -82.6403},
		"ST. PETERSBURG|TAMPA":                       {Lat: 27.9506, Lon: -82.4572},
		"SAN JUAN|SAN JUAN":                          {Lat: 18.4655, Lon: -66.1057},
		"GUAM|GUAM":                                  {Lat: 13.4443, Lon: 144.7937},
	}
}
