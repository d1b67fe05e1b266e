// Package render - embedded stylesheet, control markup and script.
//
// All three are plain constants rather than external assets: the whole
// point of the output is a single self-contained file. animationScript
// is a fmt template (path JSON, cell size, margin, closed flag); the
// script body itself contains no fmt verbs.
package render

const stylesheet = `
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    max-width: 900px;
    margin: 40px auto;
    padding: 20px;
    background: #f8fafc;
}
h1 {
    color: #1e293b;
    margin-bottom: 10px;
}
.metadata {
    color: #64748b;
    margin-bottom: 20px;
}
.metadata span {
    margin-right: 20px;
}
#board {
    display: block;
    margin: 20px 0;
    background: white;
    border-radius: 8px;
    box-shadow: 0 4px 6px -1px rgba(0,0,0,0.1);
    padding: 10px;
}
.controls {
    display: flex;
    gap: 10px;
    align-items: center;
    margin-top: 20px;
    flex-wrap: wrap;
}
.controls button {
    padding: 8px 16px;
    font-size: 14px;
    border: none;
    border-radius: 6px;
    background: #3b82f6;
    color: white;
    cursor: pointer;
}
.controls button:disabled {
    background: #94a3b8;
    cursor: not-allowed;
}
.controls label {
    color: #475569;
}
.controls input[type="range"] {
    width: 100px;
}
#move-display {
    font-size: 16px;
    color: #1e293b;
    font-weight: 500;
    min-width: 120px;
}
.view-options {
    margin-top: 15px;
    padding-top: 15px;
    border-top: 1px solid #e2e8f0;
    display: flex;
    gap: 20px;
    flex-wrap: wrap;
}
.view-options label {
    display: flex;
    align-items: center;
    gap: 6px;
    color: #475569;
    cursor: pointer;
}
`

const controlsHTML = `<div class="controls">
        <button id="reset" onclick="reset()">Reset</button>
        <button id="stepBack" onclick="stepBack()">&#9664; Step</button>
        <button id="playPause" onclick="togglePlayPause()">Play</button>
        <button id="stepForward" onclick="stepForward()">Step &#9654;</button>
        <button id="fullTour" onclick="showFullTour()">Full Tour</button>
        <label>Speed: <input type="range" id="speed" min="1" max="100" value="50"></label>
        <span id="move-display">Move: 0 / 0</span>
        <div class="view-options">
            <label><input type="checkbox" id="showColors" checked onchange="toggleColors()"> Square colors</label>
            <label><input type="checkbox" id="showNumbers" checked onchange="toggleNumbers()"> Move numbers</label>
        </div>
    </div>`

const animationScript = `
const path = %s;
const cellSize = %d;
const margin = %d;
const total = path.length;
const isClosed = %t;

let currentMove = 0;
let isPlaying = false;
let animationTimer = null;
let showNumbers = true;
let showColors = true;

function getCellCenter(x, y) {
    return [
        margin + x * cellSize + cellSize / 2,
        y * cellSize + cellSize / 2
    ];
}

function interpolateColor(ratio) {
    const r = Math.floor(0x22 + (0xef - 0x22) * ratio);
    const g = Math.floor(0xc5 - (0xc5 - 0x44) * ratio);
    const b = Math.floor(0x5e - (0x5e - 0x44) * ratio);
    return '#' + r.toString(16).padStart(2, '0')
               + g.toString(16).padStart(2, '0')
               + b.toString(16).padStart(2, '0');
}

function updateDisplay() {
    document.getElementById('move-display').textContent =
        'Move: ' + currentMove + ' / ' + (total - 1);
    document.getElementById('stepBack').disabled = currentMove === 0;
    document.getElementById('stepForward').disabled = currentMove >= total - 1;
}

function updateClosingLine() {
    const closingLine = document.getElementById('closing-line');
    if (!isClosed || currentMove < total - 1) {
        closingLine.style.display = 'none';
        return;
    }
    const [x1, y1] = getCellCenter(path[total - 1][0], path[total - 1][1]);
    const [x2, y2] = getCellCenter(path[0][0], path[0][1]);
    closingLine.setAttribute('x1', x1);
    closingLine.setAttribute('y1', y1);
    closingLine.setAttribute('x2', x2);
    closingLine.setAttribute('y2', y2);
    closingLine.style.display = 'block';
}

function drawUpToMove(moveNum) {
    const pathGroup = document.getElementById('path-lines');
    const numbersGroup = document.getElementById('move-numbers');
    const knight = document.getElementById('knight');

    pathGroup.innerHTML = '';
    numbersGroup.innerHTML = '';

    for (let i = 0; i < moveNum; i++) {
        const [x1, y1] = getCellCenter(path[i][0], path[i][1]);
        const [x2, y2] = getCellCenter(path[i + 1][0], path[i + 1][1]);
        const line = document.createElementNS('http://www.w3.org/2000/svg', 'line');
        line.setAttribute('x1', x1);
        line.setAttribute('y1', y1);
        line.setAttribute('x2', x2);
        line.setAttribute('y2', y2);
        line.setAttribute('stroke', interpolateColor(i / (total - 1)));
        line.setAttribute('stroke-width', '3');
        line.setAttribute('stroke-linecap', 'round');
        pathGroup.appendChild(line);
    }

    if (showNumbers) {
        const fontSize = cellSize / 3;
        for (let i = 0; i <= moveNum; i++) {
            const [cx, cy] = getCellCenter(path[i][0], path[i][1]);
            const text = document.createElementNS('http://www.w3.org/2000/svg', 'text');
            text.setAttribute('x', cx);
            text.setAttribute('y', cy + fontSize / 3);
            text.setAttribute('text-anchor', 'middle');
            text.setAttribute('font-size', fontSize);
            text.setAttribute('font-weight', 'bold');
            text.setAttribute('fill', '#1e293b');
            text.textContent = i;
            numbersGroup.appendChild(text);
        }
    }

    const [kx, ky] = getCellCenter(path[moveNum][0], path[moveNum][1]);
    knight.setAttribute('cx', kx);
    knight.setAttribute('cy', ky);
    knight.style.display = 'block';

    updateClosingLine();
}

function toggleNumbers() {
    showNumbers = document.getElementById('showNumbers').checked;
    drawUpToMove(currentMove);
}

function toggleColors() {
    showColors = document.getElementById('showColors').checked;
    document.getElementById('grid-colored').style.display = showColors ? 'block' : 'none';
    document.getElementById('grid-plain').style.display = showColors ? 'none' : 'block';
}

function stepForward() {
    if (currentMove < total - 1) {
        currentMove++;
        drawUpToMove(currentMove);
        updateDisplay();
    }
    if (currentMove >= total - 1) {
        pause();
    }
}

function stepBack() {
    if (currentMove > 0) {
        currentMove--;
        drawUpToMove(currentMove);
        updateDisplay();
    }
}

function reset() {
    pause();
    currentMove = 0;
    showNumbers = true;
    showColors = true;
    document.getElementById('showNumbers').checked = true;
    document.getElementById('showColors').checked = true;
    document.getElementById('grid-colored').style.display = 'block';
    document.getElementById('grid-plain').style.display = 'none';
    document.getElementById('knight').style.display = 'block';
    drawUpToMove(currentMove);
    updateDisplay();
}

function showFullTour() {
    pause();
    currentMove = total - 1;
    showNumbers = false;
    showColors = false;
    document.getElementById('showNumbers').checked = false;
    document.getElementById('showColors').checked = false;
    document.getElementById('grid-colored').style.display = 'none';
    document.getElementById('grid-plain').style.display = 'block';
    document.getElementById('knight').style.display = 'none';
    drawUpToMove(currentMove);
    updateDisplay();
}

function getSpeed() {
    return 1000 - document.getElementById('speed').value * 9;
}

function play() {
    if (currentMove >= total - 1) {
        currentMove = 0;
    }
    isPlaying = true;
    document.getElementById('playPause').textContent = 'Pause';
    tick();
}

function pause() {
    isPlaying = false;
    document.getElementById('playPause').textContent = 'Play';
    if (animationTimer) {
        clearTimeout(animationTimer);
        animationTimer = null;
    }
}

function togglePlayPause() {
    if (isPlaying) {
        pause();
    } else {
        play();
    }
}

function tick() {
    if (!isPlaying) return;
    stepForward();
    if (currentMove < total - 1) {
        animationTimer = setTimeout(tick, getSpeed());
    }
}

drawUpToMove(0);
updateDisplay();
`
