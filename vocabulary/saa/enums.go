package saa

// Role is the capacity in which a Person appears on an Inventory.
type Role string

const (
	RoleOwner       Role = "owner"
	RoleBeneficiary Role = "beneficiary"
	RoleAppraiser   Role = "appraiser"
)

// Predicate returns the inventory-side relation predicate for a role.
func (r Role) Predicate() string {
	switch r {
	case RoleOwner:
		return InventoryOwner
	case RoleBeneficiary:
		return InventoryBeneficiary
	case RoleAppraiser:
		return InventoryAppraiser
	}
	return ""
}

// ActType is the legal category of a notarial act.
type ActType string

// Act types strong enough to evidence co-reference between an inventory and
// a notarial act. Acts outside this set are excluded by the linkage engine
// even when the name similarity passes.
const (
	ActBoedelinventaris      ActType = "Boedelinventaris"
	ActBoedelscheiding       ActType = "Boedelscheiding"
	ActTestament             ActType = "Testament"
	ActOverig                ActType = "Overig"
	ActHuwelijkseVoorwaarden ActType = "Huwelijkse voorwaarden"
	ActKwitantie             ActType = "Kwitantie"
)

// LinkableActTypes is the default act-type whitelist for the linkage engine.
func LinkableActTypes() []ActType {
	return []ActType{
		ActBoedelinventaris,
		ActBoedelscheiding,
		ActTestament,
		ActOverig,
		ActHuwelijkseVoorwaarden,
		ActKwitantie,
	}
}
