// internal/taxonomy/taxonomy.go

// Package taxonomy holds the fixed classification tables of the two external
// methodologies: USOAP CMA audit areas and critical elements, CANSO SoE SMS
// components and study areas, and the maturity scale. The tables are contract
// data — codes, weights, ordering and thresholds must match the published
// methodologies and are verified once at startup.
package taxonomy

import (
	"assessment-engine/internal/models"
)

// AuditAreas are the nine USOAP CMA audit areas, keyed by ICAO code.
// Labels are bilingual (English / Spanish) for display layers.
var AuditAreas = map[string]Label{
	"LEG": {EN: "Primary Aviation Legislation", ES: "Legislación aeronáutica básica"},
	"ORG": {EN: "Civil Aviation Organization", ES: "Organización de aviación civil"},
	"PEL": {EN: "Personnel Licensing and Training", ES: "Licencias al personal e instrucción"},
	"OPS": {EN: "Aircraft Operations", ES: "Operaciones de aeronaves"},
	"AIR": {EN: "Airworthiness of Aircraft", ES: "Aeronavegabilidad de aeronaves"},
	"AIG": {EN: "Accident and Incident Investigation", ES: "Investigación de accidentes e incidentes"},
	"ANS": {EN: "Air Navigation Services", ES: "Servicios de navegación aérea"},
	"AGA": {EN: "Aerodromes and Ground Aids", ES: "Aeródromos y ayudas terrestres"},
	"SSP": {EN: "State Safety Programme", ES: "Programa estatal de seguridad operacional"},
}

// CriticalElements are the eight ICAO critical elements of a state safety
// oversight system.
var CriticalElements = map[string]Label{
	"CE-1": {EN: "Primary aviation legislation", ES: "Legislación aeronáutica básica"},
	"CE-2": {EN: "Specific operating regulations", ES: "Reglamentos de explotación específicos"},
	"CE-3": {EN: "State system and functions", ES: "Sistema y funciones estatales"},
	"CE-4": {EN: "Qualified technical personnel", ES: "Personal técnico cualificado"},
	"CE-5": {EN: "Technical guidance and tools", ES: "Orientación técnica y herramientas"},
	"CE-6": {EN: "Licensing and certification obligations", ES: "Obligaciones de licencias y certificación"},
	"CE-7": {EN: "Surveillance obligations", ES: "Obligaciones de vigilancia"},
	"CE-8": {EN: "Resolution of safety issues", ES: "Resolución de problemas de seguridad"},
}

// SMSComponent describes one of the four CANSO SoE components with its fixed
// roll-up weight and canonical display order.
type SMSComponent struct {
	Code   string
	Label  Label
	Weight float64
	Order  int
}

// Label is a bilingual display label.
type Label struct {
	EN string
	ES string
}

// SMSComponents is the fixed component table. Weights must sum to exactly 1.0;
// Verify enforces this at startup.
var SMSComponents = map[string]SMSComponent{
	"POLICY": {
		Code:   "POLICY",
		Label:  Label{EN: "Safety Policy and Objectives", ES: "Política y objetivos de seguridad"},
		Weight: 0.25,
		Order:  1,
	},
	"RISK_MANAGEMENT": {
		Code:   "RISK_MANAGEMENT",
		Label:  Label{EN: "Safety Risk Management", ES: "Gestión de riesgos de seguridad"},
		Weight: 0.30,
		Order:  2,
	},
	"ASSURANCE": {
		Code:   "ASSURANCE",
		Label:  Label{EN: "Safety Assurance", ES: "Garantía de la seguridad"},
		Weight: 0.25,
		Order:  3,
	},
	"PROMOTION": {
		Code:   "PROMOTION",
		Label:  Label{EN: "Safety Promotion", ES: "Promoción de la seguridad"},
		Weight: 0.20,
		Order:  4,
	},
}

// ComponentOrder is the canonical CANSO component ordering used wherever
// component breakdowns are reported (not alphabetical).
var ComponentOrder = []string{"POLICY", "RISK_MANAGEMENT", "ASSURANCE", "PROMOTION"}

// StudyArea maps one of the twelve CANSO SoE study areas to its parent
// component.
type StudyArea struct {
	Code      string
	Label     Label
	Component string
}

// StudyAreas is the fixed study-area table, three areas per component.
var StudyAreas = map[string]StudyArea{
	"SA-01": {Code: "SA-01", Label: Label{EN: "Safety Policy", ES: "Política de seguridad"}, Component: "POLICY"},
	"SA-02": {Code: "SA-02", Label: Label{EN: "Management Commitment", ES: "Compromiso de la dirección"}, Component: "POLICY"},
	"SA-03": {Code: "SA-03", Label: Label{EN: "Safety Accountabilities", ES: "Responsabilidades de seguridad"}, Component: "POLICY"},
	"SA-04": {Code: "SA-04", Label: Label{EN: "Hazard Identification", ES: "Identificación de peligros"}, Component: "RISK_MANAGEMENT"},
	"SA-05": {Code: "SA-05", Label: Label{EN: "Risk Assessment and Mitigation", ES: "Evaluación y mitigación de riesgos"}, Component: "RISK_MANAGEMENT"},
	"SA-06": {Code: "SA-06", Label: Label{EN: "Management of Change", ES: "Gestión del cambio"}, Component: "RISK_MANAGEMENT"},
	"SA-07": {Code: "SA-07", Label: Label{EN: "Safety Performance Monitoring", ES: "Supervisión del desempeño de seguridad"}, Component: "ASSURANCE"},
	"SA-08": {Code: "SA-08", Label: Label{EN: "Safety Reporting and Investigation", ES: "Notificación e investigación de seguridad"}, Component: "ASSURANCE"},
	"SA-09": {Code: "SA-09", Label: Label{EN: "Continuous Improvement", ES: "Mejora continua"}, Component: "ASSURANCE"},
	"SA-10": {Code: "SA-10", Label: Label{EN: "Training and Education", ES: "Formación y educación"}, Component: "PROMOTION"},
	"SA-11": {Code: "SA-11", Label: Label{EN: "Safety Communication", ES: "Comunicación de seguridad"}, Component: "PROMOTION"},
	"SA-12": {Code: "SA-12", Label: Label{EN: "Safety Culture", ES: "Cultura de seguridad"}, Component: "PROMOTION"},
}

// MaturityScores is the fixed letter-to-numeric map of the CANSO five-point
// scale.
var MaturityScores = map[models.MaturityLevel]int{
	models.MaturityA: 1,
	models.MaturityB: 2,
	models.MaturityC: 3,
	models.MaturityD: 4,
	models.MaturityE: 5,
}

// MaturityLevelOrder lists levels from weakest to strongest. The weakest-link
// rule scans this order and returns the first level present.
var MaturityLevelOrder = []models.MaturityLevel{
	models.MaturityA,
	models.MaturityB,
	models.MaturityC,
	models.MaturityD,
	models.MaturityE,
}

// Level-bucketing thresholds: score >= threshold maps to the paired level,
// checked strongest first; anything below 1.5 is level A.
var LevelThresholds = []struct {
	Min   float64
	Level models.MaturityLevel
}{
	{4.5, models.MaturityE},
	{3.5, models.MaturityD},
	{2.5, models.MaturityC},
	{1.5, models.MaturityB},
}

const weightTolerance = 1e-9

// TotalComponentWeight returns the sum of all component weights.
func TotalComponentWeight() float64 {
	var sum float64
	for _, c := range SMSComponents {
		sum += c.Weight
	}
	return sum
}
