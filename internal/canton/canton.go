package canton

// Canton identifies one of the 26 Swiss cantons.
// The zero value is Unmatched, which is what Normalize returns for area
// names that do not belong to any canton (districts, municipalities,
// totals rows, typos).
type Canton int

const (
	// Unmatched marks an area name that is not a canton.
	Unmatched Canton = iota
	Zurich
	Bern
	Luzern
	Uri
	Schwyz
	Obwalden
	Nidwalden
	Glarus
	Zug
	Fribourg
	Solothurn
	BaselStadt
	BaselLandschaft
	Schaffhausen
	AppenzellAusserrhoden
	AppenzellInnerrhoden
	StGallen
	Graubuenden
	Aargau
	Thurgau
	Ticino
	Vaud
	Valais
	Neuchatel
	Geneve
	Jura
)

// Count is the number of cantons. Aggregation output always contains
// exactly this many records.
const Count = 26

// info carries the canonical display name and the multilingual aliases
// of a canton. The canonical names follow the spelling used by the
// swissBOUNDARIES3D dataset, which is the join key for geometry lookup.
type info struct {
	name    string
	aliases []string
}

// infos is ordered by the official canton order (ZH first, JU last).
// Aliases do not need to repeat the canonical name; it is registered
// automatically. Accents and case are irrelevant here because every key
// is folded before insertion.
var infos = map[Canton]info{
	Zurich:                {"Zürich", []string{"Zurich", "Zurigo", "Turitg", "ZH"}},
	Bern:                  {"Bern", []string{"Berne", "Berna", "BE"}},
	Luzern:                {"Luzern", []string{"Lucerne", "Lucerna", "LU"}},
	Uri:                   {"Uri", []string{"UR"}},
	Schwyz:                {"Schwyz", []string{"Svitto", "SZ"}},
	Obwalden:              {"Obwalden", []string{"Obwald", "Obvaldo", "OW"}},
	Nidwalden:             {"Nidwalden", []string{"Nidwald", "Nidvaldo", "NW"}},
	Glarus:                {"Glarus", []string{"Glaris", "Glarona", "GL"}},
	Zug:                   {"Zug", []string{"Zoug", "Zugo", "ZG"}},
	Fribourg:              {"Fribourg", []string{"Freiburg", "Friburgo", "Friburg", "FR"}},
	Solothurn:             {"Solothurn", []string{"Soleure", "Soletta", "SO"}},
	BaselStadt:            {"Basel-Stadt", []string{"Basel Stadt", "Bâle-Ville", "Basilea Città", "BS"}},
	BaselLandschaft:       {"Basel-Landschaft", []string{"Basel Landschaft", "Baselland", "Basel-Land", "Bâle-Campagne", "Basilea Campagna", "BL"}},
	Schaffhausen:          {"Schaffhausen", []string{"Schaffhouse", "Sciaffusa", "SH"}},
	AppenzellAusserrhoden: {"Appenzell Ausserrhoden", []string{"Appenzell A.Rh.", "Appenzell Rhodes-Extérieures", "Appenzello Esterno", "AR"}},
	AppenzellInnerrhoden:  {"Appenzell Innerrhoden", []string{"Appenzell I.Rh.", "Appenzell Rhodes-Intérieures", "Appenzello Interno", "AI"}},
	StGallen:              {"St. Gallen", []string{"St.Gallen", "Sankt Gallen", "Saint-Gall", "San Gallo", "SG"}},
	Graubuenden:           {"Graubünden", []string{"Graubuenden", "Grisons", "Grigioni", "Grischun", "GR"}},
	Aargau:                {"Aargau", []string{"Argovie", "Argovia", "AG"}},
	Thurgau:               {"Thurgau", []string{"Thurgovie", "Turgovia", "TG"}},
	Ticino:                {"Ticino", []string{"Tessin", "TI"}},
	Vaud:                  {"Vaud", []string{"Waadt", "VD"}},
	Valais:                {"Valais", []string{"Wallis", "Vallese", "VS"}},
	Neuchatel:             {"Neuchâtel", []string{"Neuenburg", "NE"}},
	Geneve:                {"Genève", []string{"Genf", "Geneva", "Ginevra", "GE"}},
	Jura:                  {"Jura", []string{"Giura", "JU"}},
}

// all is the official canton order used for deterministic iteration.
var all = []Canton{
	Zurich, Bern, Luzern, Uri, Schwyz, Obwalden, Nidwalden, Glarus, Zug,
	Fribourg, Solothurn, BaselStadt, BaselLandschaft, Schaffhausen,
	AppenzellAusserrhoden, AppenzellInnerrhoden, StGallen, Graubuenden,
	Aargau, Thurgau, Ticino, Vaud, Valais, Neuchatel, Geneve, Jura,
}

// All returns the 26 cantons in the official order.
// The returned slice is shared; callers must not modify it.
func All() []Canton {
	return all
}

// Name returns the canonical display name of the canton, or an empty
// string for Unmatched.
func (c Canton) Name() string {
	if inf, ok := infos[c]; ok {
		return inf.name
	}
	return ""
}

// String returns the canonical display name for logging and reports.
func (c Canton) String() string {
	if c == Unmatched {
		return "UNMATCHED"
	}
	return c.Name()
}
