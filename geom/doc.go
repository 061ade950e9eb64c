// Package geom - алгебра геометричних примітивів і тестів зіткнень,
// узагальнена за розмірністю простору та точністю скаляра.
//
// Примітиви: Bounds (AABB), Radial (куля), Hyperplane, Ray, Simplex
// і сама точка - вектор Vec2/Vec3/Vec4. Усі вони - значення без
// спільного змінного стану, тож будь-яку функцію можна викликати
// з багатьох горутин одночасно.
//
// Функції зіткнень не перевіряють вхідні дані: від'ємний радіус,
// неодинична нормаль, вироджений симплекс чи нульовий напрямок променя
// дають NaN або довільну відповідь. Для даних ззовні є Validate, а збірка
// з -tags geomdebug вмикає внутрішні assert.
package geom
