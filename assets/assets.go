package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// ErrMissingObject is wrapped when a level lacks a required object group entry.
var ErrMissingObject = errors.New("level is missing a required object")

// ErrInvalidProperty is returned when level metadata carries an unknown value.
var ErrInvalidProperty = errors.New("invalid level property")

// Quota names understood in a level's "quota" property.
const (
	QuotaCollectibles = "collectibles"
	QuotaEnemies      = "enemies"
)

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// Level is the static description of one playable level.
type Level struct {
	ID        config.LevelID
	Name      string
	Path      string
	Width     int
	Height    int
	Quota     []string
	Contact   config.ContactVariant
	Aim       config.AimMode
	IntroHint string

	Spawn           Point // player center
	Solids          []gamemath.Rect
	Lava            []gamemath.Rect
	Collectibles    []Point // centers
	PowerUps        []Point // centers
	Enemies         []EnemySpawn
	MovingPlatforms []MovingPlatformSpawn
	Ladders         []LadderSpawn
	Lever           *gamemath.Rect
	Gate            *gamemath.Rect
	Exit            *gamemath.Rect
}

// EnemySpawn places a slime. Platform names a moving platform to ride;
// otherwise the slime patrols between PatrolLeft and PatrolRight.
type EnemySpawn struct {
	Bounds       gamemath.Rect
	PatrolLeft   float64
	PatrolRight  float64
	Speed        float64
	Platform     string
	FireInterval time.Duration // zero for slimes that never shoot
}

// MovingPlatformSpawn oscillates between center-x From and To.
type MovingPlatformSpawn struct {
	Name   string
	Bounds gamemath.Rect
	From   float64
	To     float64
	Speed  float64
}

// LadderSpawn is a climbable column centered on X.
type LadderSpawn struct {
	X       float64
	TopY    float64
	BottomY float64
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads levels from the embedded asset filesystem.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS reads levels from fsys, so tools and tests can supply their own maps.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadLevel loads the level registered for id in config.LevelFiles.
func (l *LevelLoader) LoadLevel(id config.LevelID) (*Level, error) {
	path, ok := config.LevelFiles[id]
	if !ok {
		return nil, fmt.Errorf("no level file registered for id %d", id)
	}
	level, err := l.LoadFile(path)
	if err != nil {
		return nil, err
	}
	level.ID = id
	return level, nil
}

// LoadFile parses a Tiled map made of object groups into a Level.
func (l *LevelLoader) LoadFile(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	level := &Level{
		Name:    levelPath,
		Path:    levelPath,
		Width:   levelMap.Width * levelMap.TileWidth,
		Height:  levelMap.Height * levelMap.TileHeight,
		Quota:   []string{QuotaCollectibles},
		Contact: config.ContactHurtsPlayer,
		Aim:     config.AimPatrol,
	}

	platformNames := map[string]bool{}
	spawnFound := false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Level":
			for _, o := range og.Objects {
				if title := o.Properties.GetString("title"); title != "" {
					level.Name = title
				}
				if quota := o.Properties.GetString("quota"); quota != "" {
					level.Quota = splitList(quota)
				}
				if contact := o.Properties.GetString("contact"); contact != "" {
					v, err := config.ParseContactVariant(contact)
					if err != nil {
						return nil, fmt.Errorf("%s: %w: %w", levelPath, ErrInvalidProperty, err)
					}
					level.Contact = v
				}
				if aim := o.Properties.GetString("aim"); aim != "" {
					m, err := config.ParseAimMode(aim)
					if err != nil {
						return nil, fmt.Errorf("%s: %w: %w", levelPath, ErrInvalidProperty, err)
					}
					level.Aim = m
				}
				level.IntroHint = o.Properties.GetString("hint")
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.Spawn = Point{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case "Solids":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, rectOf(o))
			}
		case "Lava":
			for _, o := range og.Objects {
				level.Lava = append(level.Lava, rectOf(o))
			}
		case "Collectibles":
			for _, o := range og.Objects {
				level.Collectibles = append(level.Collectibles, Point{X: o.X, Y: o.Y})
			}
		case "PowerUps":
			for _, o := range og.Objects {
				level.PowerUps = append(level.PowerUps, Point{X: o.X, Y: o.Y})
			}
		case "MovingPlatforms":
			for _, o := range og.Objects {
				bounds := rectOf(o)
				level.MovingPlatforms = append(level.MovingPlatforms, MovingPlatformSpawn{
					Name:   o.Name,
					Bounds: bounds,
					From:   o.Properties.GetFloat("from"),
					To:     o.Properties.GetFloat("to"),
					Speed:  o.Properties.GetFloat("speed"),
				})
				platformNames[o.Name] = true
			}
		case "Ladders":
			for _, o := range og.Objects {
				level.Ladders = append(level.Ladders, LadderSpawn{
					X:       o.X + o.Width/2,
					TopY:    o.Y,
					BottomY: o.Y + o.Height,
				})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				bounds := rectOf(o)
				spawn := EnemySpawn{
					Bounds:      bounds,
					PatrolLeft:  o.Properties.GetFloat("left"),
					PatrolRight: o.Properties.GetFloat("right"),
					Speed:       o.Properties.GetFloat("speed"),
					Platform:    o.Properties.GetString("platform"),
				}
				if ms := o.Properties.GetInt("fireIntervalMs"); ms > 0 {
					spawn.FireInterval = time.Duration(ms) * time.Millisecond
				}
				if spawn.Speed == 0 {
					spawn.Speed = config.Enemy.DefaultSpeed
				}
				if spawn.PatrolLeft == 0 && spawn.PatrolRight == 0 {
					cx := bounds.CenterX()
					spawn.PatrolLeft = cx - config.Enemy.DefaultPatrolRange
					spawn.PatrolRight = cx + config.Enemy.DefaultPatrolRange
				}
				level.Enemies = append(level.Enemies, spawn)
			}
		case "Progression":
			for _, o := range og.Objects {
				r := rectOf(o)
				switch objectKind(o) {
				case "lever":
					level.Lever = &r
				case "gate":
					level.Gate = &r
				case "exit":
					level.Exit = &r
				}
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: player spawn: %w", levelPath, ErrMissingObject)
	}
	if level.Exit == nil {
		return nil, fmt.Errorf("%s: exit: %w", levelPath, ErrMissingObject)
	}
	for _, e := range level.Enemies {
		if e.Platform != "" && !platformNames[e.Platform] {
			return nil, fmt.Errorf("%s: enemy rides unknown platform %q", levelPath, e.Platform)
		}
	}

	// Left-to-right keeps spawn order stable regardless of editor object order
	sort.SliceStable(level.Enemies, func(i, j int) bool {
		return level.Enemies[i].Bounds.X < level.Enemies[j].Bounds.X
	})

	return level, nil
}

func rectOf(o *tiled.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func objectKind(o *tiled.Object) string {
	kind := o.Class
	if kind == "" {
		kind = o.Type //nolint:staticcheck // TMX uses type= attribute
	}
	if kind == "" {
		kind = o.Name
	}
	return strings.ToLower(kind)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
