package constants

// PreferenceObjectKey is the blob key holding the location document.
const PreferenceObjectKey = "preferences/location.json"

// UnknownLocationName is shown when reverse geocoding finds no settlement.
const UnknownLocationName = "Unknown Location"

// DeliveryGroupTag collects every Delivery in the fx graph.
const DeliveryGroupTag = `group:"deliveries"`
