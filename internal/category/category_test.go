package category_test

import (
	"testing"

	"github.com/becked/pinacotheca/internal/category"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		// Portraits
		{"ROME_LEADER_MALE_01", "portraits"},
		{"ROME_MALE_01", "portraits"},
		{"EGYPT_FEMALE_LEADER_02", "portraits"},
		{"PERSIA_LEADER_FEMALE_01", "portraits"},
		{"CARTHAGE_MALE_05", "portraits"},
		{"CREDIT_Artist_Name", "portraits"},
		{"GENERIC_BABY_01", "portraits"},
		{"GENERIC_ADULT_FEMALE", "portraits"},
		{"HISTORICAL_PERSON_ALEXANDER", "portraits"},
		{"PORTRAIT_BACKGROUND_ROME", "portraits"},
		// Units vs unit actions: ordering matters
		{"UNIT_ARCHER_01", "units"},
		{"UNIT_HOPLITE_GREEK", "units"},
		{"UNIT_LEGION_ROME", "units"},
		{"UNIT_WAR_ELEPHANT_INDIA", "units"},
		{"UNIT_TRIREME_GREEK", "units"},
		{"UNIT_ACTION_FORTIFY", "unit_actions"},
		{"UNIT_ACTION_ATTACK", "unit_actions"},
		{"UNIT_ATTACKED_01", "unit_actions"},
		{"UNIT_DEAD", "unit_actions"},
		{"UNITTRAIT_VETERAN", "unit_traits"},
		{"EFFECTUNIT_BUFF", "unit_effects"},
		// Game concepts
		{"CREST_ROME", "crests"},
		{"IMPROVEMENT_FARM", "improvements"},
		{"RESOURCE_IRON", "resources"},
		{"GOOD_WINE", "resources"},
		{"YIELD_FOOD", "yields"},
		{"TECH_IRONWORKING", "techs"},
		{"LAW_SLAVERY", "laws"},
		{"RELIGION_ZOROASTRIANISM", "religions"},
		{"TRAIT_BRAVE", "traits"},
		{"SPECIALIST_PRIEST", "specialists"},
		{"MISSION_SPY", "missions"},
		{"FAMILY_MARRIAGE_01", "missions"},
		{"PROJECT_WONDER", "projects"},
		{"TERRAIN_DESERT", "terrains"},
		{"FAMILY_JULIUS", "families"},
		{"NATION_ROME", "nations"},
		{"COUNCIL_WAR", "councils"},
		{"THEOLOGY_MONOTHEISM", "theology"},
		{"GREEK_GOD_ZEUS", "gods"},
		{"ROMAN_GODDESS_MINERVA", "gods"},
		// Game state
		{"BONUS_PRODUCTION", "bonuses"},
		{"COOLDOWN_ABILITY", "cooldowns"},
		{"ACHIEVEMENT_CONQUEROR", "achievements"},
		{"EVENT_PLAGUE", "events_images"},
		{"UI_BUTTON", "events_images"},
		{"HUD_MINIMAP", "events_images"},
		{"ICON_GOLD", "events_images"},
		{"Arrow_Up", "events_images"},
		{"CHARACTER_SELECT_FRAME", "events_images"}, // ends in Frame
		{"DIPLOMACY_WAR", "diplomacy"},
		{"AI_DECLARE_WAR", "diplomacy"},
		{"BARB_RAID", "diplomacy"},
		{"CITY_GROWTH", "city"},
		{"MILITARY_STRENGTH", "military"},
		{"STATUS_WOUNDED", "status"},
		{"EFFECT_BUFF", "effects"},
		// UI
		{"button_primary", "ui_buttons"},
		{"ACTION_MOVE", "ui_buttons"},
		{"Panel_Info", "ui_frames"},
		{"Background_Dark", "ui_frames"},
		// Misc
		{"CHARACTER_SELECT_01", "character_select"},
		{"TOOL_HAMMER", "tools"},
		{"Colosseum_Day", "wonders"},
		{"Hanging_Gardens", "wonders"},
		// Catch-all
		{"XYZZY_PLUGH", "other"},
		{"random_unknown_sprite", "other"},
		{"xyz123", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := category.Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %q; want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	for _, name := range []string{"crest_rome", "CREST_ROME", "Crest_Rome"} {
		if got := category.Classify(name); got != "crests" {
			t.Errorf("Classify(%q) = %q; want crests", name, got)
		}
	}
}

// Overlapping patterns must resolve by table order: the compound
// UNIT_ACTION_ rule precedes the bare UNIT_ rule.
func TestClassifyOrdering(t *testing.T) {
	if got := category.Classify("UNIT_ARCHER_01"); got != "units" {
		t.Errorf("Classify(UNIT_ARCHER_01) = %q; want units", got)
	}
	if got := category.Classify("UNIT_ACTION_ATTACK"); got != "unit_actions" {
		t.Errorf("Classify(UNIT_ACTION_ATTACK) = %q; want unit_actions", got)
	}
}

func TestIDsCatchAllLast(t *testing.T) {
	ids := category.IDs()
	if len(ids) == 0 {
		t.Fatal("IDs() returned no categories")
	}
	if ids[len(ids)-1] != category.Other {
		t.Errorf("last category = %q; want %q", ids[len(ids)-1], category.Other)
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate category id %q", id)
		}
		seen[id] = true
	}
}

func TestDisplayFor(t *testing.T) {
	tests := []struct {
		id        string
		wantLabel string
		wantIcon  string
	}{
		{"portraits", "Portraits", "👤"},
		{"crests", "Crests & Emblems", "🛡️"},
		{"other", "Other", "📁"},
		{"unknown_category", "Unknown Category", "📁"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d := category.DisplayFor(tt.id)
			if d.Label != tt.wantLabel || d.Icon != tt.wantIcon {
				t.Errorf("DisplayFor(%q) = (%q, %q); want (%q, %q)",
					tt.id, d.Label, d.Icon, tt.wantLabel, tt.wantIcon)
			}
		})
	}
}

func TestDisplayForAllDeclared(t *testing.T) {
	for _, id := range category.IDs() {
		if !category.Known(id) {
			t.Errorf("category %q missing display info", id)
		}
	}
}
