package webserver

var htmlPage = `<html>
<head>
	<meta charset="utf-8">
	<title>SkreeLang Editor</title>
</head>
<body style="background-color: #1E1E1E; color: white; font-family: sans-serif;">
	<h1 style="display: inline-block;">SkreeLang Editor</h1>
	<button id="translateButton" style="margin-left: 50px; height: 40px; width: 120px;">TRANSLATE</button>
	<button id="saveButton" style="margin-left: 10px; height: 40px; width: 120px;">SAVE .sk6</button>
	<button id="clearButton" style="margin-left: 10px; height: 40px; width: 80px;">CLEAR</button>
	<div id="palette" style="margin: 10px 0;"></div>
	<textarea id="input" style="width: 980px; height: 120px; font-size: 1.6em; background-color: black; color: white; border: 2px solid white;"></textarea>
	<h2>HexaLang Output</h2>
	<pre id="output" style="width: 980px; padding: 10px; font-size: 1.2em; background-color: black; min-height: 150px; border: 2px solid white;"></pre>
	<h2>English Translation</h2>
	<pre id="gloss" style="width: 980px; padding: 10px; font-size: 1.2em; background-color: black; min-height: 100px; border: 2px solid white;"></pre>

	<script>
		var socket = null;
		var listing = "";

		function connect() {
			socket = new WebSocket("ws://" + window.location.host + "/ws");
			socket.onopen = function() {
				socket.send(JSON.stringify({type: "catalog"}));
			};
			socket.onmessage = function(event) {
				var data = JSON.parse(event.data);
				if (data.type == "catalog") {
					var palette = document.getElementById("palette");
					palette.innerHTML = "";
					data.glyphs.forEach(function(g) {
						var btn = document.createElement("button");
						btn.textContent = g.glyph;
						btn.title = g.name + " (" + g.role + "): " + g.description;
						btn.style = "font-size: 1.4em; margin: 3px; min-width: 70px; height: 50px;";
						btn.onclick = function() {
							var input = document.getElementById("input");
							input.value = input.value.trim() + (input.value.trim() ? " " : "") + g.glyph;
						};
						palette.appendChild(btn);
					});
				} else if (data.type == "translation") {
					listing = data.result.listing;
					var out = listing;
					data.result.diagnostics.forEach(function(d) {
						out += "\n! " + d.message;
					});
					document.getElementById("output").textContent = out;
					document.getElementById("gloss").textContent = data.result.gloss.join("\n");
				} else if (data.type == "error") {
					document.getElementById("output").textContent = "error: " + data.message;
				}
			};
			// try to reconnect every 3 seconds
			socket.onclose = function() {
				setTimeout(connect, 3000);
			};
		}
		connect();

		document.getElementById("translateButton").onclick = function() {
			socket.send(JSON.stringify({
				type: "translate",
				text: document.getElementById("input").value
			}));
		};

		document.getElementById("saveButton").onclick = function() {
			if (!listing) {
				alert("Nothing to save.");
				return;
			}
			var link = document.createElement("a");
			link.href = URL.createObjectURL(new Blob([listing], {type: "text/plain"}));
			link.download = "program.sk6";
			link.click();
		};

		document.getElementById("clearButton").onclick = function() {
			listing = "";
			document.getElementById("input").value = "";
			document.getElementById("output").textContent = "";
			document.getElementById("gloss").textContent = "";
		};
	</script>
</body>
</html>`
