package models

// IterationMode выбирает множество узлов, которые посещает TileIterator.
type IterationMode int

const (
	// IterateAll — все плитки группы в pre-order: верхнеуровневые в порядке
	// списка, для каждой — родитель непосредственно перед детьми, дети в
	// порядке списка, каждый узел ровно один раз.
	IterateAll IterationMode = iota
	// IterateTopLevel — только верхнеуровневые плитки в порядке списка.
	IterateTopLevel
)

// TileIterator — ленивый конечный обход дерева группы с детерминированным
// порядком. Явный стек вместо генератора; дерево не модифицируется,
// несколько независимых итераторов поверх одного (неизменяемого на время
// обхода) дерева безопасны.
type TileIterator struct {
	mode  IterationMode
	stack []*Tile
}

// NewTileIterator создаёт итератор по дереву группы в заданном режиме.
func NewTileIterator(group *TileGroup, mode IterationMode) *TileIterator {
	it := &TileIterator{mode: mode}
	it.push(group.Tiles)

	return it
}

// HasNext сообщает о наличии следующего элемента, не потребляя его.
func (it *TileIterator) HasNext() bool {
	return len(it.stack) > 0
}

// Next возвращает следующую плитку и продвигает итератор.
// Вызов после исчерпания — нарушение контракта (panic);
// наличие элемента проверяется через HasNext.
func (it *TileIterator) Next() *Tile {
	if len(it.stack) == 0 {
		panic("models: TileIterator.Next called past exhaustion")
	}

	top := len(it.stack) - 1
	tile := it.stack[top]
	it.stack = it.stack[:top]

	if it.mode == IterateAll {
		it.push(tile.SubTiles)
	}

	return tile
}

// push кладёт плитки на стек в обратном порядке,
// чтобы снимались они в порядке списка.
func (it *TileIterator) push(tiles []*Tile) {
	for i := len(tiles) - 1; i >= 0; i-- {
		it.stack = append(it.stack, tiles[i])
	}
}
