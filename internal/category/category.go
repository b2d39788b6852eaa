// Package category assigns sprite names to semantic categories using an
// ordered table of regular expressions. The first matching rule wins, so
// more specific patterns (UNIT_ACTION_) must come before general ones
// (UNIT_) or they will never be reached.
package category

import (
	"fmt"
	"regexp"
	"strings"
)

// Other is the reserved catch-all category.
const Other = "other"

// Backgrounds never matches by pattern; the extraction driver assigns it
// by image size (uncategorized sprites wider than 1024px).
const Backgrounds = "backgrounds"

// Display holds the human-readable presentation of a category.
type Display struct {
	Label string
	Icon  string
}

// Rule pairs a category identifier with its compiled name pattern.
type Rule struct {
	ID      string
	pattern *regexp.Regexp
}

type ruleDef struct {
	id      string
	pattern string
}

// Patterns are matched case-insensitively and anchored at the start of the
// name, mirroring the game's own naming conventions.
var ruleDefs = []ruleDef{
	// All portraits (nation, generic, historical, backgrounds)
	{"portraits",
		`^(AKSUM|ASSYRIA|BABYLONIA|CARTHAGE|CHINA|DANE|EGYPT|GAUL|GREECE|HITTITE|` +
			`HUN|HYKSOS|INDIA|KUSH|MAURYA|MITANNI|NUMIDIAN|PERSIA|ROME|SCYTHIAN|` +
			`THRACIAN|VANDAL|YUEZHI|TAMIL)_(LEADER_)?(FEMALE|MALE)_` +
			`|^CREDIT_` +
			`|^GENERIC_(BABY|BOY|GIRL|TEEN|ADULT|SENIOR)` +
			`|^HISTORICAL_PERSON` +
			`|^PORTRAIT_BACKGROUND`},
	// Military units (actual unit types, not actions/effects)
	{"units",
		`^UNIT_(AFRICAN_ELEPHANT|AKKADIAN|AMAZON|AMUN|ARCHER|ARMOURED|ASSAULT|` +
			`ATENISM|AXEMAN|BALLISTA|BATTERING|BIREME|BUDDHIS|CAMEL|CARAVAN|CATAPHRACT|` +
			`CHARIOT|CHRISTIAN|CIMMERIAN|CLUBTHROWER|CONSCRIPT|CROSSBOW|DMT|DROMON|` +
			`ELITE|FEMALE|GAESATA|GALLEY|HASTATUS|HEAVY|HINDU|HOPLITE|HORSE|HOWDAH|` +
			`HUSCARL|JAVEL|JUDAISM|KUSHAN|KUSHITE|LEGION|LEVY|LIBYAN|LIGHT|LONGBOW|` +
			`MACEMAN|MAHOUT|MANGONEL|MANICHAE|MARAUDER|MEROITIC|MILITIA|NAPATAN|NOMAD|` +
			`ONAGER|PALTON|PELTAST|PHALANG|PIKE|POLYBOLOS|SCOUT|SETTLER|SHOTELAI|SIEGE|` +
			`SKIRMISH|SLINGER|SPEAR|STEPPE|SWORD|THREE|TRIREME|TURRETED|WARLORD|` +
			`WARRIOR|WAR_ELEPHANT|WORKER|ZOROAST)`},
	{"unit_actions", `^UNIT_(ACTION_|ATTACKED|CAPTURED|COOLDOWN|DAMAGED|DEAD|FLANKED|ROUT|KILLED|PUSH)`},
	{"unit_traits", `^UNITTRAIT_`},
	{"unit_effects", `^EFFECTUNIT_`},
	// Game concepts
	{"crests", `^CREST_`},
	{"improvements", `^IMPROVEMENT_`},
	{"resources", `^(RESOURCE_|GOOD_)`},
	{"yields", `^YIELD_`},
	{"techs", `^TECH_`},
	{"laws", `^LAW_`},
	{"religions", `^RELIGION_`},
	{"traits", `^TRAIT_`},
	{"specialists", `^SPECIALIST_`},
	{"missions", `^(MISSION_|FAMILY_MARRIAGE)`},
	{"projects", `^PROJECT_`},
	{"terrains", `^TERRAIN_`},
	{"families", `^FAMILY_`},
	{"nations", `^NATION_`},
	{"councils", `^COUNCIL_`},
	{"theology", `^THEOLOGY_`},
	{"gods", `^[A-Z]+_(GOD|GODDESS)_`},
	// Game state/status
	{"bonuses", `^BONUS_`},
	{"cooldowns", `^COOLDOWN_`},
	{"achievements", `^ACHIEVEMENT`},
	{"events_images", `^(EVENT_|Arrow|Scroll|Tab|Menu|Popup|Tooltip|Card|Gradient|Mask|Circle|Square|Bar_|BarIcon|UI_|HUD_|ICON_|PING_|TURN_SUMMARY)|^.*Frame$`},
	{"diplomacy", `^(DIPLOMACY_|AI_DECLARE|BARB_)`},
	{"city", `^CITY_`},
	{"military", `^MILITARY_`},
	{"status", `^STATUS_`},
	{"effects", `^EFFECT_`},
	// UI elements
	{"ui_buttons", `^(button|Button|BUTTON|ACTION)`},
	{"ui_frames", `^(Frame|frame|Panel|panel|Window|window|Trim|trim|Border|border|Background|BG|Blur)`},
	// Characters
	{"character_select", `^CHARACTER_SELECT`},
	// Tools and misc game icons
	{"tools", `^TOOL_`},
	{"wonders",
		`^(Colosseum|Colossus|Pantheon|Library|Acropolis|Heliopolis|Mausoleum|` +
			`Necropolis|Cothon|Circus|Hanging|Bazaar|Oracle)`},
	// Assigned by size in the extraction driver, never by pattern
	{Backgrounds, `^$`},
	// Catch-all
	{Other, `.*`},
}

var displayInfo = map[string]Display{
	"portraits":        {"Portraits", "👤"},
	"units":            {"Military Units", "⚔️"},
	"unit_actions":     {"Unit Actions", "🎬"},
	"unit_traits":      {"Unit Traits", "🏅"},
	"unit_effects":     {"Unit Effects", "💫"},
	"crests":           {"Crests & Emblems", "🛡️"},
	"gods":             {"Gods & Goddesses", "✨"},
	"religions":        {"Religions", "🕯️"},
	"improvements":     {"Improvements", "🏛️"},
	"resources":        {"Resources", "💎"},
	"yields":           {"Yields", "📊"},
	"techs":            {"Technologies", "🔬"},
	"laws":             {"Laws", "📜"},
	"traits":           {"Archetypes", "🎭"},
	"councils":         {"Councils", "👥"},
	"specialists":      {"Specialists", "🎓"},
	"missions":         {"Missions", "🎯"},
	"projects":         {"Projects", "🔨"},
	"terrains":         {"Terrains", "🏔️"},
	"families":         {"Families", "👨‍👩‍👧"},
	"nations":          {"Nations", "🏴"},
	"theology":         {"Theologies", "⛪"},
	"wonders":          {"Wonders", "🏛️"},
	"bonuses":          {"Bonuses", "⬆️"},
	"cooldowns":        {"Cooldowns", "⏱️"},
	"achievements":     {"Achievements", "🏆"},
	"events_images":    {"UI", "📰"},
	"diplomacy":        {"Diplomacy", "🤝"},
	"city":             {"City", "🏙️"},
	"military":         {"Military Status", "🎖️"},
	"status":           {"Status Icons", "📍"},
	"effects":          {"Effects", "✨"},
	"ui_buttons":       {"Buttons", "🔘"},
	"ui_frames":        {"Frames & Panels", "🪟"},
	"character_select": {"Character Select", "👆"},
	"tools":            {"Tools", "🔧"},
	Backgrounds:        {"Backgrounds", "🖼️"},
	Other:              {"Other", "📁"},
}

var rules = mustCompile(ruleDefs)

// mustCompile builds the rule table and enforces its structural
// invariants: unique identifiers, display info for every rule, and the
// catch-all in final position.
func mustCompile(defs []ruleDef) []Rule {
	seen := make(map[string]bool, len(defs))
	compiled := make([]Rule, len(defs))
	for i, d := range defs {
		if seen[d.id] {
			panic(fmt.Sprintf("category: duplicate rule %q", d.id))
		}
		seen[d.id] = true
		if _, ok := displayInfo[d.id]; !ok {
			panic(fmt.Sprintf("category: rule %q has no display info", d.id))
		}
		compiled[i] = Rule{ID: d.id, pattern: regexp.MustCompile(`(?i)` + d.pattern)}
	}
	if len(compiled) == 0 || compiled[len(compiled)-1].ID != Other {
		panic("category: catch-all rule must be last")
	}
	return compiled
}

// Classify returns the category for a sprite name. It is total: names
// matching no declared rule fall through to the catch-all.
func Classify(name string) string {
	for _, r := range rules {
		if r.pattern.MatchString(name) {
			return r.ID
		}
	}
	return Other
}

// IDs returns every category identifier in rule order.
func IDs() []string {
	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = r.ID
	}
	return ids
}

// Known reports whether id is a declared category.
func Known(id string) bool {
	_, ok := displayInfo[id]
	return ok
}

// DisplayFor returns the display info for a category. Identifiers without
// declared info (e.g. a folder left over from an older table) get a label
// derived from the identifier and a generic icon.
func DisplayFor(id string) Display {
	if d, ok := displayInfo[id]; ok {
		return d
	}
	return Display{Label: titleCase(strings.ReplaceAll(id, "_", " ")), Icon: "📁"}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
