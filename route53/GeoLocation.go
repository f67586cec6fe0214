package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Continents for geolocation routing.
type Continent string

const (
	Continent_AFRICA        Continent = "AFRICA"
	Continent_ANTARCTICA    Continent = "ANTARCTICA"
	Continent_ASIA          Continent = "ASIA"
	Continent_EUROPE        Continent = "EUROPE"
	Continent_OCEANIA       Continent = "OCEANIA"
	Continent_NORTH_AMERICA Continent = "NORTH_AMERICA"
	Continent_SOUTH_AMERICA Continent = "SOUTH_AMERICA"
)

var continentCodes = map[Continent]string{
	Continent_AFRICA:        "AF",
	Continent_ANTARCTICA:    "AN",
	Continent_ASIA:          "AS",
	Continent_EUROPE:        "EU",
	Continent_OCEANIA:       "OC",
	Continent_NORTH_AMERICA: "NA",
	Continent_SOUTH_AMERICA: "SA",
}

// Value returns the two-letter continent code.
func (c Continent) Value() string {
	return continentCodes[c]
}

func (c Continent) String() string {
	return "Continent." + string(c)
}

// Routing based on geographical location.
type GeoLocation struct {
	continentCode   *string
	countryCode     *string
	subdivisionCode *string
}

// Geolocation resource record based on continent code.
func GeoLocation_Continent(continentCode Continent) *GeoLocation {
	return &GeoLocation{continentCode: jsii.String(continentCode.Value())}
}

// Geolocation resource record based on country code (ISO 3166-1 alpha-2).
func GeoLocation_Country(countryCode *string) *GeoLocation {
	return &GeoLocation{countryCode: countryCode}
}

// Default (wildcard) routing for locations that no other geolocation record matches.
func GeoLocation_Default() *GeoLocation {
	return &GeoLocation{countryCode: jsii.String("*")}
}

// Geolocation resource record based on subdivision code. The country defaults to US.
func GeoLocation_Subdivision(subdivisionCode *string, countryCode *string) *GeoLocation {
	if countryCode == nil {
		countryCode = jsii.String("US")
	}
	return &GeoLocation{countryCode: countryCode, subdivisionCode: subdivisionCode}
}

func (g *GeoLocation) ContinentCode() *string   { return g.continentCode }
func (g *GeoLocation) CountryCode() *string     { return g.countryCode }
func (g *GeoLocation) SubdivisionCode() *string { return g.subdivisionCode }

func (g *GeoLocation) String() string {
	return cfn.Repr("GeoLocation", struct {
		ContinentCode   *string `json:"continentCode"`
		CountryCode     *string `json:"countryCode"`
		SubdivisionCode *string `json:"subdivisionCode"`
	}{g.continentCode, g.countryCode, g.subdivisionCode})
}

func (g *GeoLocation) property() *CfnRecordSet_GeoLocationProperty {
	return &CfnRecordSet_GeoLocationProperty{
		ContinentCode:   g.continentCode,
		CountryCode:     g.countryCode,
		SubdivisionCode: g.subdivisionCode,
	}
}

// The failover routing role of a record.
type Failover string

const (
	// The primary record set.
	Failover_PRIMARY Failover = "PRIMARY"
	// The secondary record set.
	Failover_SECONDARY Failover = "SECONDARY"
)

func (f Failover) String() string {
	return "Failover." + string(f)
}

// Properties for a CIDR routing configuration.
type CidrRoutingConfigProps struct {
	// The CIDR collection ID.
	CollectionId *string `field:"required" json:"collectionId" yaml:"collectionId"`
	// The CIDR collection location name.
	LocationName *string `field:"required" json:"locationName" yaml:"locationName"`
}

// Routing based on the client's IP address, through a CIDR collection.
type CidrRoutingConfig struct {
	collectionID string
	locationName string
}

// Creates a CIDR routing config for a named location in the collection.
func CidrRoutingConfig_Create(props *CidrRoutingConfigProps) *CidrRoutingConfig {
	if props == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter props is required, but nil was provided"))
	}
	if err := cfn.ValidateStruct(props, func() string { return "parameter props" }); err != nil {
		panic(err)
	}
	c := &CidrRoutingConfig{collectionID: *props.CollectionId, locationName: *props.LocationName}
	c.validate()
	return c
}

// Creates a CIDR routing config for the default ("*") location of the collection.
func CidrRoutingConfig_WithDefaultLocation(collectionId *string) *CidrRoutingConfig {
	if collectionId == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter collectionId is required, but nil was provided"))
	}
	c := &CidrRoutingConfig{collectionID: *collectionId, locationName: "*"}
	c.validate()
	return c
}

func (c *CidrRoutingConfig) CollectionId() *string { return jsii.String(c.collectionID) }
func (c *CidrRoutingConfig) LocationName() *string { return jsii.String(c.locationName) }

func (c *CidrRoutingConfig) validate() {
	if cfn.IsUnresolved(c.collectionID) {
		return
	}
	if !uuidPattern.MatchString(c.collectionID) {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "collectionId(%s) is required and must be a UUID", c.collectionID))
	}
	if !cfn.IsUnresolved(c.locationName) && c.locationName != "*" && !cidrLocationNamePattern.MatchString(c.locationName) {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "locationName(%s) must be 1-16 characters of letters, numbers, - and _", c.locationName))
	}
}

func (c *CidrRoutingConfig) property() *CfnRecordSet_CidrRoutingConfigProperty {
	return &CfnRecordSet_CidrRoutingConfigProperty{
		CollectionId: jsii.String(c.collectionID),
		LocationName: jsii.String(c.locationName),
	}
}
