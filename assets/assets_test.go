package assets

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/echoes-of-ember/config"
)

func TestLoadAshenForest(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel(config.LevelAshenForest)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Name != "Ashen Forest" {
		t.Errorf("Name = %q", level.Name)
	}
	if level.Width != 2400 || level.Height != 600 {
		t.Errorf("size = %dx%d, want 2400x600", level.Width, level.Height)
	}
	if got := len(level.Collectibles); got != 10 {
		t.Errorf("collectibles = %d, want 10", got)
	}
	if got := len(level.Enemies); got != 3 {
		t.Errorf("enemies = %d, want 3", got)
	}
	if got := len(level.Ladders); got != 2 {
		t.Errorf("ladders = %d, want 2", got)
	}
	if level.Contact != config.ContactHurtsPlayer {
		t.Errorf("Contact = %q", level.Contact)
	}
	if len(level.Quota) != 1 || level.Quota[0] != QuotaCollectibles {
		t.Errorf("Quota = %v", level.Quota)
	}
	if level.Lever == nil || level.Gate == nil || level.Exit == nil {
		t.Fatalf("progression objects missing: lever=%v gate=%v exit=%v", level.Lever, level.Gate, level.Exit)
	}
	if level.Spawn != (Point{X: 150, Y: 500}) {
		t.Errorf("Spawn = %+v", level.Spawn)
	}

	first := level.Enemies[0]
	if first.PatrolLeft != 350 || first.PatrolRight != 500 || first.Speed != 40 {
		t.Errorf("first slime = %+v", first)
	}
	if ladder := level.Ladders[0]; ladder.X != 1100 || ladder.TopY != 300 || ladder.BottomY != 430 {
		t.Errorf("first ladder = %+v", ladder)
	}
}

func TestLoadMoltenDepths(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel(config.LevelMoltenDepths)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Contact != config.ContactDefeatsEnemy || level.Aim != config.AimPlayer {
		t.Errorf("variant = %q/%q", level.Contact, level.Aim)
	}
	if len(level.Quota) != 2 {
		t.Errorf("Quota = %v, want collectibles and enemies", level.Quota)
	}
	if len(level.Lava) == 0 {
		t.Error("no lava")
	}
	if len(level.PowerUps) != 1 {
		t.Errorf("power-ups = %d, want 1", len(level.PowerUps))
	}
	if len(level.MovingPlatforms) != 2 {
		t.Fatalf("moving platforms = %d, want 2", len(level.MovingPlatforms))
	}
	a := level.MovingPlatforms[0]
	if a.Name != "platformA" || a.From != 950 || a.To != 1250 || a.Speed != 60 {
		t.Errorf("platformA = %+v", a)
	}
	if a.Bounds.CenterX() != 1000 {
		t.Errorf("platformA center = %v, want 1000", a.Bounds.CenterX())
	}

	intervals := map[string]time.Duration{}
	for _, e := range level.Enemies {
		intervals[e.Platform] = e.FireInterval
	}
	if intervals["platformA"] != 1800*time.Millisecond || intervals["platformB"] != 2200*time.Millisecond {
		t.Errorf("fire intervals = %v", intervals)
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	if _, err := NewLevelLoader().LoadLevel(config.LevelID(99)); err == nil {
		t.Fatal("expected an error for an unregistered level")
	}
}

func TestLoadFileRequiresSpawnAndExit(t *testing.T) {
	fsys := fstest.MapFS{
		"bare.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="24" tileheight="24" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="216" width="240" height="24"/>
 </objectgroup>
</map>
`)},
	}
	_, err := NewLevelLoaderFS(fsys).LoadFile("bare.tmx")
	if !errors.Is(err, ErrMissingObject) {
		t.Fatalf("err = %v, want ErrMissingObject", err)
	}
}

func TestLoadFileRejectsUnknownMetadata(t *testing.T) {
	tests := []struct {
		name     string
		property string
	}{
		{"contact typo", `<property name="contact" value="defeat-enemy"/>`},
		{"aim typo", `<property name="aim" value="players"/>`},
	}
	for _, tt := range tests {
		fsys := fstest.MapFS{
			"meta.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="24" tileheight="24" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Level">
  <object id="1" name="meta" x="0" y="0">
   <properties>
    ` + tt.property + `
   </properties>
  </object>
 </objectgroup>
</map>
`)},
		}
		_, err := NewLevelLoaderFS(fsys).LoadFile("meta.tmx")
		if !errors.Is(err, ErrInvalidProperty) {
			t.Errorf("%s: err = %v, want ErrInvalidProperty", tt.name, err)
		}
	}
}

func TestSynthesizeTone(t *testing.T) {
	tone := config.Tone{Start: 440, End: 880, Duration: 100 * time.Millisecond, Volume: 1}
	pcm := SynthesizeTone(tone, 44100)
	if want := 4410 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
	if SynthesizeTone(config.Tone{}, 44100) != nil {
		t.Error("zero-length tone should render nothing")
	}
}
