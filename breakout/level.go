package breakout

import "github.com/plus3/brickfall/ecs"

// RowsForLevel returns how many brick rows a level transition lays out.
func RowsForLevel(level int) int {
	return baseLevelRows + level
}

// GridLayout returns the transforms of a brick grid with the given number of
// rows, in row-major order.
func GridLayout(rows int) []Transform {
	if rows <= 0 {
		return nil
	}
	bricks := make([]Transform, 0, rows*BrickColumns)
	for row := range rows {
		for col := range BrickColumns {
			bricks = append(bricks, Transform{
				X: BrickOriginX + float64(col)*(BrickWidth+BrickGapX),
				Y: BrickOriginY + float64(row)*(BrickHeight+BrickGapY),
				W: BrickWidth,
				H: BrickHeight,
			})
		}
	}
	return bricks
}

// LevelLayout is the grid generated when the game advances to level.
func LevelLayout(level int) []Transform {
	return GridLayout(RowsForLevel(level))
}

// InitialLayout is the grid present when a game starts.
func InitialLayout() []Transform {
	return GridLayout(InitialRows)
}

// Spawner is satisfied by *ecs.Commands. Wrap a storage with StorageSpawner.
type Spawner interface {
	Spawn(components ...any)
}

// StorageSpawner spawns directly into a storage.
func StorageSpawner(storage *ecs.Storage) Spawner {
	return storageSpawner{storage}
}

type storageSpawner struct{ storage *ecs.Storage }

func (s storageSpawner) Spawn(components ...any) { s.storage.Spawn(components...) }

// SpawnBricks creates one brick per transform.
func SpawnBricks(spawner Spawner, layout []Transform) {
	for _, t := range layout {
		spawner.Spawn(brickComponents(t)...)
	}
}

func brickComponents(t Transform) []any {
	return []any{RoleBrick, t, Style{Shape: ShapeRectangle, Color: White}}
}

func ballComponents(t Transform, v Velocity) []any {
	return []any{RoleBall, t, v, Style{Shape: ShapeCircle, Color: White}}
}

func paddleComponents(t Transform) []any {
	return []any{RolePaddle, t, Style{Shape: ShapeRectangle, Color: White}}
}
