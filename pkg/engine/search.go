package engine

import (
	"github.com/notnil/chess"
)

const pawnValue = 100

const nodesCheckInterval = 256

func aspirationWindow(t *thread, depth, prevScore int) int {
	if depth >= 5 && !(prevScore <= valueLoss || prevScore >= valueWin) {
		const Window = 25
		var alpha = max(-valueInfinity, prevScore-Window)
		var beta = min(valueInfinity, prevScore+Window)
		var score = t.searchRoot(alpha, beta, depth)
		if score > alpha && score < beta {
			return score
		}
		if score >= beta {
			beta = valueInfinity
		}
		if score <= alpha {
			alpha = -valueInfinity
		}
		score = t.searchRoot(alpha, beta, depth)
		if score > alpha && score < beta {
			return score
		}
	}
	return t.searchRoot(-valueInfinity, valueInfinity, depth)
}

func (t *thread) searchRoot(alpha, beta, depth int) int {
	const height = 0
	t.stack[height].key = positionKey(t.rootPosition)
	return t.alphaBeta(t.rootPosition, alpha, beta, depth, height, false)
}

// main search method
func (t *thread) alphaBeta(position *chess.Position, alpha, beta, depth, height int, isCheck bool) int {
	if depth <= 0 {
		return t.quiescence(position, alpha, beta, height, isCheck)
	}
	t.incNodes(height)
	t.stack[height].pv.clear()

	var rootNode = height == 0
	var pvNode = beta != alpha+1
	// near the root nothing is pruned or reduced
	var tactical = height < t.tacticalPlies
	var key = t.stack[height].key

	if !rootNode {
		if height >= maxHeight {
			return t.evaluator.Evaluate(position)
		}
		if t.isRepeat(height) {
			return valueDraw
		}
		// mate distance pruning
		if winIn(height+1) <= alpha {
			return alpha
		}
		if lossIn(height+2) >= beta && !isCheck {
			return beta
		}
	}

	// transposition table
	var ttDepth, ttValue, ttBound, ttMove, ttHit = t.engine.transTable.Read(key)
	if ttHit {
		ttValue = valueFromTT(ttValue, height)
		if ttDepth >= depth && !pvNode && !rootNode {
			if ttValue >= beta && (ttBound&boundLower) != 0 {
				return ttValue
			}
			if ttValue <= alpha && (ttBound&boundUpper) != 0 {
				return ttValue
			}
		}
	}

	var moves []*chess.Move
	if rootNode {
		moves = t.rootMoves
	} else {
		moves = position.ValidMoves()
		if len(moves) == 0 {
			if position.Status() == chess.Checkmate {
				return lossIn(height)
			}
			return valueDraw
		}
	}

	var staticEval = t.evaluator.Evaluate(position)

	// reverse futility pruning
	if !rootNode && !pvNode && !tactical && depth <= 8 && !isCheck {
		var score = staticEval - pawnValue*depth
		if score >= beta && beta < valueWin {
			return staticEval
		}
	}

	if height+2 <= maxHeight {
		t.stack[height+2].killer1 = 0
		t.stack[height+2].killer2 = 0
	}

	var ordered []orderedMove
	if rootNode {
		ordered = t.stack[height].moveList[:0]
		for _, m := range moves {
			ordered = append(ordered, orderedMove{move: m})
		}
	} else {
		ordered = orderMoves(t.stack[height].moveList, position, moves,
			ttMove, t.stack[height].killer1, t.stack[height].killer2, &t.history)
	}
	t.stack[height].moveList = ordered

	var side = position.Turn()
	var quietsSearched = t.stack[height].quiets[:0]
	var movesSearched = 0
	var bestMove *chess.Move
	var best = -valueInfinity
	var oldAlpha = alpha

	for i := range ordered {
		var move = ordered[i].move
		if rootNode && t.excluded[packMove(move)] {
			continue
		}
		var isNoisy = isCaptureOrPromotion(move)
		var givesCheck = move.HasTag(chess.Check)
		var packed = packMove(move)

		var child = position.Update(move)
		t.stack[height+1].key = positionKey(child)
		movesSearched++

		var extension, reduction int
		if givesCheck && depth >= 3 {
			extension = 1
		}

		if depth >= 3 && movesSearched > 1 && !isNoisy && !tactical {
			reduction = t.engine.lmr.get(depth, movesSearched)
			if packed == t.stack[height].killer1 || packed == t.stack[height].killer2 {
				reduction--
			}
			if !isCheck {
				var history = t.history.Read(side, move)
				reduction -= max(-2, min(2, history/5000))
			}
			if pvNode {
				reduction -= 2
			}
			if isCheck || givesCheck {
				reduction--
			}
			reduction = max(0, min(depth-2, reduction))
		}

		if !isNoisy {
			quietsSearched = append(quietsSearched, move)
		}

		var newDepth = depth - 1 + extension

		// the child window is shifted by the root move bonus
		var bonus = 0
		if rootNode {
			bonus = t.engine.rootBonus[packed]
		}
		var a, b = alpha - bonus, beta - bonus

		var score = a + 1
		// LMR
		if reduction > 0 {
			score = -t.alphaBeta(child, -(a + 1), -a, newDepth-reduction, height+1, givesCheck)
		}
		// PVS
		if score > a && b != a+1 && movesSearched > 1 && newDepth > 0 {
			score = -t.alphaBeta(child, -(a + 1), -a, newDepth, height+1, givesCheck)
		}
		// full search
		if score > a {
			score = -t.alphaBeta(child, -b, -a, newDepth, height+1, givesCheck)
		}
		if score > valueLoss && score < valueWin {
			score += bonus
		}

		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
			if alpha >= beta {
				break
			}
		}
	}
	t.stack[height].quiets = quietsSearched

	if movesSearched == 0 {
		return best
	}

	if alpha > oldAlpha && bestMove != nil && !isCaptureOrPromotion(bestMove) {
		t.history.Update(side, quietsSearched, bestMove, depth)
		t.updateKiller(packMove(bestMove), height)
	}

	var bound = 0
	if best > oldAlpha {
		bound |= boundLower
	}
	if best < beta {
		bound |= boundUpper
	}
	if !(rootNode && (bound == boundUpper || len(t.excluded) != 0 || t.engine.rootBonus != nil)) {
		t.engine.transTable.Update(key, depth, valueToTT(best, height), bound, packMove(bestMove))
	}

	return best
}

func (t *thread) quiescence(position *chess.Position, alpha, beta, height int, isCheck bool) int {
	t.incNodes(height)
	t.stack[height].pv.clear()
	if height >= maxHeight {
		return t.evaluator.Evaluate(position)
	}
	if height > 0 && t.isRepeat(height) {
		return valueDraw
	}

	var _, ttValue, ttBound, _, ttHit = t.engine.transTable.Read(t.stack[height].key)
	if ttHit {
		ttValue = valueFromTT(ttValue, height)
		if ttBound == boundExact ||
			ttBound == boundLower && ttValue >= beta ||
			ttBound == boundUpper && ttValue <= alpha {
			return ttValue
		}
	}

	var moves = position.ValidMoves()
	if len(moves) == 0 {
		if isCheck || position.Status() == chess.Checkmate {
			return lossIn(height)
		}
		return valueDraw
	}

	var best = -valueInfinity
	var ordered []orderedMove
	if isCheck {
		ordered = orderMoves(t.stack[height].moveList, position, moves, 0, 0, 0, &t.history)
	} else {
		var eval = t.evaluator.Evaluate(position)
		best = eval
		if eval > alpha {
			alpha = eval
			if alpha >= beta {
				return alpha
			}
		}
		ordered = orderNoisyMoves(t.stack[height].moveList, position, moves)
	}
	t.stack[height].moveList = ordered

	for i := range ordered {
		var move = ordered[i].move
		var child = position.Update(move)
		t.stack[height+1].key = positionKey(child)
		var score = -t.quiescence(child, -beta, -alpha, height+1, move.HasTag(chess.Check))
		best = max(best, score)
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
			if alpha >= beta {
				break
			}
		}
	}
	return best
}

func (t *thread) incNodes(height int) {
	t.selDepth = max(t.selDepth, height)
	t.nodes++
	if t.nodes >= nodesCheckInterval {
		t.flushNodes()
		if t.engine.timeManager.IsDone() {
			panic(errSearchTimeout)
		}
	}
}

func (t *thread) flushNodes() {
	if t.nodes == 0 {
		return
	}
	var total = t.engine.nodes.Add(t.nodes)
	t.nodes = 0
	t.engine.timeManager.OnNodesChanged(total)
}

func (t *thread) isRepeat(height int) bool {
	var key = t.stack[height].key
	for i := height - 2; i >= 0; i -= 2 {
		if t.stack[i].key == key {
			return true
		}
	}
	return t.engine.historyKeys[key] >= 2
}

func (t *thread) updateKiller(move uint32, height int) {
	if t.stack[height].killer1 != move {
		t.stack[height].killer2 = t.stack[height].killer1
		t.stack[height].killer1 = move
	}
}

func (t *thread) assignPV(height int, move *chess.Move) {
	t.stack[height].pv.assign(move, &t.stack[height+1].pv)
}
