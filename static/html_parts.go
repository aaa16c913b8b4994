package static

var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Видимые дуги окружностей</title>
		<style>
			body {
				background-color: #1F1F1F; /* Темный фон для всей страницы */
				color: #d3d3d3; /* Светло-серый текст */
				font-family: Consolas, monospace;
				overflow: hidden; /* Запретить прокрутку */
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
			}

			#right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575; /* Темная граница для правого контейнера */
				overflow-y: auto; /* Вертикальная прокрутка для логов */
				overflow-x: auto; /* Вертикальная прокрутка для логов */
				background-color: #1e1e1e; /* Темный фон для контейнера логов */
			}

			#logs {
				white-space: pre-wrap; /* Сохраняем пробелы и переносим строки */
				word-wrap: break-word; /* Перенос длинных слов */
				color: #d3d3d3; /* Цвет текста в логах, светло-серый */
				font-family: Consolas, monospace; /* Моноширинный шрифт для логов */
			}

			#chart-container {
				width: 100%;
				height: 400px;
			}

			input[type="number"],
			input[type="checkbox"],
			input[type="submit"] {
				background-color: #2b2b2b; /* Темный фон для полей ввода */
				color: #d3d3d3; /* Светло-серый текст для полей */
				border: 1px solid #444; /* Темная граница */
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			label {
				color: #d3d3d3; /* Светло-серый цвет для текста меток */
			}

			h1 {
				color: #d3d3d3; /* Цвет заголовка светло-серый */
			}

			input[type="submit"]:hover {
				background-color: #444; /* Немного светлее при наведении */
				cursor: pointer;
			}

			/* Добавление стилей для темной темы */
			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444; /* Цвет ползунка */
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b; /* Цвет области прокрутки */
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Параметры сцены</h1>
                <form id="diagram-form" method="POST">
                    <label for="width">Ширина (W):</label>
                    <input type="number" id="width" name="width" value="1000" min="100" max="5000"><br><br>
                    <label for="height">Высота (H):</label>
                    <input type="number" id="height" name="height" value="580" min="100" max="5000"><br><br>
                    <label for="count">Количество окружностей (n):</label>
                    <input type="number" id="count" name="count" value="32" min="0" max="500"><br><br>
                    <label for="minradius">Мин. радиус (доля высоты):</label>
                    <input type="number" id="minradius" name="minradius" value="0.05" min="0.001" max="1" step="0.001"><br><br>
                    <label for="maxradius">Макс. радиус (доля высоты):</label>
                    <input type="number" id="maxradius" name="maxradius" value="0.2" min="0.001" max="1" step="0.001"><br><br>
                    <label for="speed">Скорость:</label>
                    <input type="number" id="speed" name="speed" value="15" min="0" max="200"><br><br>
                    <label for="frames">Кадров:</label>
                    <input type="number" id="frames" name="frames" value="1" min="1" max="1000"><br><br>
                    <label for="seed">Seed:</label>
                    <input type="number" id="seed" name="seed" value="0"><br><br>
                    <label for="verbose">Подробные логи:</label>
                    <input type="checkbox" id="verbose" name="verbose" value="true"><br><br>
                    <input type="submit" value="Построить">
                </form>
    `

	// Preview is a format string taking the query of the PNG endpoint.
	Preview = `
                <h1>Кадр</h1>
                <img id="preview" src="/frame.png?%s" alt="кадр" style="max-width: 100%%; border: 1px solid #444;">
    `

	// Part2 opens the log pane; the frame preview goes right before it.
	Part2 = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('diagram-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                // Отправка данных формы
                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('Ошибка при отправке данных');
                    }
                    return response.text(); // Получаем HTML-ответ с обновленной диаграммой и логами
                })
                .then(html => {
                    document.open(); // Очищаем текущую страницу
                    document.write(html); // Записываем обновленный HTML
                    document.close(); // Закрываем поток
                })
                .catch(error => {
                    console.error('Ошибка:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)
